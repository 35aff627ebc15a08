package httpapi

import (
	"encoding/json"
	"strings"

	"github.com/metaspace/smquery/v1/elastic"
	"github.com/metaspace/smquery/v1/filters"
	"github.com/metaspace/smquery/v1/postgres"
)

// DatasetView is the JSON representation of a dataset.
type DatasetView struct {
	ID                    string        `json:"id"`
	Name                  string        `json:"name"`
	Institution           string        `json:"institution,omitempty"`
	Submitter             string        `json:"submitter,omitempty"`
	PrincipalInvestigator string        `json:"principalInvestigator,omitempty"`
	Polarity              string        `json:"polarity,omitempty"`
	IonisationSource      string        `json:"ionisationSource,omitempty"`
	Analyzer              *AnalyzerView `json:"analyzer,omitempty"`
	Organism              string        `json:"organism,omitempty"`
	OrganismPart          string        `json:"organismPart,omitempty"`
	Condition             string        `json:"condition,omitempty"`
	MaldiMatrix           string        `json:"maldiMatrix,omitempty"`
	MetadataJSON          string        `json:"metadataJson"`
}

// AnalyzerView describes the mass analyzer. ResolvingPower is evaluated at
// the m/z requested with the "mz" query parameter, or at the reference m/z.
type AnalyzerView struct {
	Type           string  `json:"type"`
	ReferenceMz    float64 `json:"mz"`
	ResolvingPower float64 `json:"resolvingPower"`
}

// AnnotationView is the JSON representation of an annotation hit.
type AnnotationView struct {
	ID                string             `json:"id"`
	SumFormula        string             `json:"sumFormula"`
	PossibleCompounds []elastic.Compound `json:"possibleCompounds"`
	Adduct            string             `json:"adduct"`
	Mz                float64            `json:"mz"`
	FDRLevel          float64            `json:"fdrLevel"`
	MSMScore          float64            `json:"msmScore"`
	RhoSpatial        float64            `json:"rhoSpatial"`
	RhoSpectral       float64            `json:"rhoSpectral"`
	RhoChaos          float64            `json:"rhoChaos"`
	Dataset           DatasetRef         `json:"dataset"`
}

// DatasetRef identifies the dataset of an annotation.
type DatasetRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DatasetAnnotationsView is a dataset with a page of its annotations.
type DatasetAnnotationsView struct {
	Dataset     DatasetView      `json:"dataset"`
	Annotations []AnnotationView `json:"annotations"`
}

func newDatasetView(reg *filters.Registry, ds postgres.Dataset, mz float64) DatasetView {
	field := func(name string) string {
		def, ok := reg.Get(name)
		if !ok {
			return ""
		}
		v, _ := def.Value(filters.MapAccessor{}, ds.Metadata)
		return v
	}
	text := func(path ...string) string {
		raw, ok := ds.Field(path...)
		if !ok {
			return ""
		}
		v, _ := filters.Text(raw)
		return v
	}

	view := DatasetView{
		ID:                    ds.ID,
		Name:                  ds.Name,
		Institution:           field(filters.Institution),
		Submitter:             text("Submitted_By", "Submitter"),
		PrincipalInvestigator: text("Submitted_By", "Principal_Investigator"),
		Polarity:              strings.ToUpper(field(filters.Polarity)),
		IonisationSource:      field(filters.IonisationSource),
		Organism:              field(filters.Organism),
		OrganismPart:          field(filters.OrganismPart),
		Condition:             field(filters.Condition),
		MaldiMatrix:           field(filters.MaldiMatrix),
		MetadataJSON:          "null",
	}

	if a, ok := ds.Analyzer(); ok {
		view.Analyzer = &AnalyzerView{
			Type:           a.Type,
			ReferenceMz:    a.ReferenceMz,
			ResolvingPower: a.ResolvingPowerAt(mz),
		}
	}
	if data, err := json.Marshal(ds.Metadata); err == nil {
		view.MetadataJSON = string(data)
	}
	return view
}

func newDatasetViews(reg *filters.Registry, rows []postgres.Dataset) []DatasetView {
	views := make([]DatasetView, 0, len(rows))
	for _, ds := range rows {
		views = append(views, newDatasetView(reg, ds, 0))
	}
	return views
}

func newAnnotationView(hit elastic.Hit) AnnotationView {
	doc := hit.Document
	compounds := doc.Compounds()
	if compounds == nil {
		compounds = []elastic.Compound{}
	}
	return AnnotationView{
		ID:                hit.ID,
		SumFormula:        doc.SumFormula,
		PossibleCompounds: compounds,
		Adduct:            doc.Adduct,
		Mz:                float64(doc.Mz),
		FDRLevel:          doc.FDR,
		MSMScore:          doc.MSM,
		RhoSpatial:        doc.ImageCorr,
		RhoSpectral:       doc.PatternMatch,
		RhoChaos:          doc.Chaos,
		Dataset:           DatasetRef{ID: doc.DatasetID, Name: doc.DatasetName},
	}
}

func newAnnotationViews(hits []elastic.Hit) []AnnotationView {
	views := make([]AnnotationView, 0, len(hits))
	for _, h := range hits {
		views = append(views, newAnnotationView(h))
	}
	return views
}
