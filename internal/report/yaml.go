package report

import (
	"bytes"
	"envtidy/internal/compare"

	"gopkg.in/yaml.v3"
)

type yamlReport struct {
	First        string           `yaml:"first"`
	Second       string           `yaml:"second"`
	OnlyInFirst  []string         `yaml:"only_in_first"`
	OnlyInSecond []string         `yaml:"only_in_second"`
	Different    []yamlDifference `yaml:"different"`
}

type yamlDifference struct {
	Key    string `yaml:"key"`
	First  string `yaml:"first"`
	Second string `yaml:"second"`
	Diff   string `yaml:"diff,omitempty"`
}

func renderYAML(buf *bytes.Buffer, first, second string, r compare.Result, opts Options) error {
	doc := yamlReport{
		First:        first,
		Second:       second,
		OnlyInFirst:  nonNil(r.OnlyInFirst),
		OnlyInSecond: nonNil(r.OnlyInSecond),
		Different:    []yamlDifference{},
	}
	for _, d := range r.Differing {
		yd := yamlDifference{Key: d.Key, First: d.First, Second: d.Second}
		if opts.InlineDiff {
			// escape codes have no place in a data document
			yd.Diff = InlineDiff(d, false)
		}
		doc.Different = append(doc.Different, yd)
	}

	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func nonNil(keys []string) []string {
	if keys == nil {
		return []string{}
	}
	return keys
}
