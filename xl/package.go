package xl

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/adnsv/srw/xml"
)

const (
	nsMain          = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	nsRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels   = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsCoreProps     = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsExtendedProps = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsDocPropsVT    = "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes"
	nsDC            = "http://purl.org/dc/elements/1.1/"
	nsDCTerms       = "http://purl.org/dc/terms/"
	nsDCMIType      = "http://purl.org/dc/dcmitype/"
	nsXSI           = "http://www.w3.org/2001/XMLSchema-instance"
)

const (
	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relWorksheet      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet"
	relSharedStrings  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/sharedStrings"
	relHyperlink      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
)

const (
	ctXML           = "application/xml"
	ctRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ctCoreProps     = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtendedProps = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	ctWorkbook      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
	ctStyles        = "application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"
	ctWorksheet     = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"
	ctSharedStrings = "application/vnd.openxmlformats-officedocument.spreadsheetml.sharedStrings+xml"
)

// Part is a single document of the package.
type Part struct {
	Path        string // package path without the leading slash
	ContentType string
	Data        []byte
}

// Relationship links a source part, or the package itself when Source is
// empty, to a target part or an external resource.
type Relationship struct {
	ID       string
	Source   string
	Type     string
	Target   string // package path of the target part, or a URL when External
	External bool
}

// Package is an assembled OPC package: a set of parts and the relationships
// between them. Relationship ids come from a single counter, so they are
// unique within the package.
type Package struct {
	Parts         []Part
	Relationships []Relationship

	lastID int
}

func (p *Package) AddPart(path, contentType string, data []byte) {
	p.Parts = append(p.Parts, Part{Path: path, ContentType: contentType, Data: data})
}

// AddRelationship links source to the part at target and returns the new
// relationship id.
func (p *Package) AddRelationship(source, typ, target string) string {
	return p.addRelationship(source, typ, target, false)
}

// AddExternalRelationship links source to a resource outside the package.
func (p *Package) AddExternalRelationship(source, typ, url string) string {
	return p.addRelationship(source, typ, url, true)
}

func (p *Package) addRelationship(source, typ, target string, external bool) string {
	p.lastID++
	id := fmt.Sprintf("rId%d", p.lastID)
	p.Relationships = append(p.Relationships, Relationship{
		ID:       id,
		Source:   source,
		Type:     typ,
		Target:   target,
		External: external,
	})
	return id
}

// Part returns the part stored at path, or nil.
func (p *Package) Part(path string) *Part {
	for i := range p.Parts {
		if p.Parts[i].Path == path {
			return &p.Parts[i]
		}
	}
	return nil
}

// WriteTo writes the content types manifest, one relationships part per
// source and then every part, in insertion order.
func (p *Package) WriteTo(s Storage) error {
	err := s.WriteBlob("[Content_Types].xml", p.contentTypes())
	if err != nil {
		return err
	}

	var sources []string
	bySource := map[string][]Relationship{}
	for _, r := range p.Relationships {
		if _, ok := bySource[r.Source]; !ok {
			sources = append(sources, r.Source)
		}
		bySource[r.Source] = append(bySource[r.Source], r)
	}
	for _, src := range sources {
		err = s.WriteBlob(relsPath(src), marshalRels(src, bySource[src]))
		if err != nil {
			return err
		}
	}

	for _, part := range p.Parts {
		err = s.WriteBlob(part.Path, part.Data)
		if err != nil {
			return fmt.Errorf("writing %s: %w", part.Path, err)
		}
	}
	return nil
}

func (p *Package) contentTypes() []byte {
	defaults := map[string]string{
		"xml":  ctXML,
		"rels": ctRelationships,
	}
	overrides := map[string]string{}
	for _, part := range p.Parts {
		ext := strings.TrimPrefix(path.Ext(part.Path), ".")
		if defaults[ext] != part.ContentType {
			overrides["/"+part.Path] = part.ContentType
		}
	}

	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("Types")
	x.Attr("xmlns", nsContentTypes)
	enumerate(defaults, func(ext, ctype string) error {
		x.OTag("+Default").Attr("Extension", ext).Attr("ContentType", ctype).CTag()
		return nil
	})
	enumerate(overrides, func(abspath, ctype string) error {
		x.OTag("+Override").Attr("PartName", abspath).Attr("ContentType", ctype).CTag()
		return nil
	})
	x.CTag()

	return bb.Bytes()
}

// relsPath returns the path of the relationships part of source.
func relsPath(source string) string {
	if source == "" {
		return "_rels/.rels"
	}
	dir, name := path.Split(source)
	return dir + "_rels/" + name + ".rels"
}

// relativeTarget expresses target relative to the folder of source.
func relativeTarget(source, target string) string {
	dir := path.Dir(source)
	if source == "" || dir == "." {
		return target
	}
	if rel, ok := strings.CutPrefix(target, dir+"/"); ok {
		return rel
	}
	return "/" + target
}

func marshalRels(source string, rels []Relationship) []byte {
	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("Relationships")
	x.Attr("xmlns", nsPackageRels)
	for _, r := range rels {
		x.OTag("+Relationship").Attr("Id", r.ID).Attr("Type", r.Type)
		if r.External {
			x.Attr("Target", r.Target).Attr("TargetMode", "External")
		} else {
			x.Attr("Target", relativeTarget(source, r.Target))
		}
		x.CTag()
	}
	x.CTag()

	return bb.Bytes()
}
