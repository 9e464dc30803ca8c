package report

import (
	"encoding/json"
	"strconv"

	"github.com/beevik/etree"
	"github.com/goccy/go-yaml"
	"github.com/shibukawa/tagcheck/matcher"
)

// document is the machine readable form of a verdict
type document struct {
	File        string   `json:"file" yaml:"file"`
	Valid       bool     `json:"valid" yaml:"valid"`
	ErrorsFound bool     `json:"errors_found" yaml:"errors_found"`
	Defects     []defect `json:"defects" yaml:"defects"`
}

type defect struct {
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Name    string `json:"name" yaml:"name"`
	Tag     string `json:"tag" yaml:"tag"`
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}

func newDocument(path string, verdict *matcher.Verdict) document {
	doc := document{
		File:        path,
		Valid:       verdict.Valid(),
		ErrorsFound: verdict.ErrorsFound,
		Defects:     make([]defect, 0, len(verdict.Defects)),
	}

	for _, d := range verdict.Defects {
		doc.Defects = append(doc.Defects, defect{
			Line:    d.Line(),
			Column:  d.Tag.Position.Column,
			Name:    d.Tag.Name,
			Tag:     d.Tag.Text,
			Kind:    d.Kind.String(),
			Message: d.Message(),
		})
	}

	return doc
}

func (r *Reporter) writeJSON(path string, verdict *matcher.Verdict) error {
	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(newDocument(path, verdict))
}

func (r *Reporter) writeYAML(path string, verdict *matcher.Verdict) error {
	data, err := yaml.Marshal(newDocument(path, verdict))
	if err != nil {
		return err
	}

	_, err = r.w.Write(data)

	return err
}

// writeCheckstyle renders the checkstyle XML format understood by most CI
// annotation tools.
func (r *Reporter) writeCheckstyle(path string, verdict *matcher.Verdict) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("checkstyle")
	root.CreateAttr("version", "4.3")

	file := root.CreateElement("file")
	file.CreateAttr("name", path)

	for _, d := range verdict.Defects {
		e := file.CreateElement("error")
		e.CreateAttr("line", strconv.Itoa(d.Line()))
		e.CreateAttr("column", strconv.Itoa(d.Tag.Position.Column))
		e.CreateAttr("severity", "error")
		e.CreateAttr("message", d.Message())
		e.CreateAttr("source", "tagcheck."+d.Kind.String())
	}

	doc.Indent(2)
	_, err := doc.WriteTo(r.w)

	return err
}
