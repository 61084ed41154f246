package reply

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"hustlebot/internal/intent"
)

// packFile mirrors the YAML layout of a response pack:
//
//	templates:
//	  joke:
//	    - "..."
//	facts:
//	  - keyword: "..."
//	    text: "..."
type packFile struct {
	Templates map[string][]string `yaml:"templates"`
	Facts     []struct {
		Keyword string `yaml:"keyword"`
		Text    string `yaml:"text"`
	} `yaml:"facts"`
}

// LoadPack reads a YAML response pack. Sections present in the file replace
// the built-in defaults; absent sections keep them.
func LoadPack(path string) (TemplateSet, Knowledge, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var pf packFile
	if err := yaml.Unmarshal(b, &pf); err != nil {
		return nil, nil, err
	}

	templates := Defaults()
	for name, lines := range pf.Templates {
		kind, ok := knownKind(name)
		if !ok {
			return nil, nil, fmt.Errorf("unknown intent %q in response pack", name)
		}
		if len(lines) == 0 {
			return nil, nil, fmt.Errorf("intent %q has no templates", name)
		}
		templates[kind] = lines
	}

	knowledge := DefaultKnowledge()
	if len(pf.Facts) > 0 {
		knowledge = make(Knowledge, 0, len(pf.Facts))
		for _, f := range pf.Facts {
			if f.Keyword == "" || f.Text == "" {
				return nil, nil, fmt.Errorf("fact entries need both keyword and text")
			}
			knowledge = append(knowledge, Fact{Keyword: strings.ToLower(f.Keyword), Text: f.Text})
		}
	}

	return templates, knowledge, nil
}

func knownKind(name string) (intent.Kind, bool) {
	for _, k := range intent.Kinds() {
		if string(k) == name {
			return k, true
		}
	}
	return "", false
}
