package elastic

import (
	"strings"

	"github.com/metaspace/smquery/v1/search"
)

// Document is the denormalized annotation record stored in the index: one
// hit of a sum formula and adduct in a dataset, together with the copied
// dataset attributes the annotation filters run against.
type Document struct {
	SumFormula    string         `json:"sf"`
	CompoundIDs   string         `json:"comp_ids,omitempty"`
	CompoundNames string         `json:"comp_names,omitempty"`
	Adduct        string         `json:"adduct"`
	Mz            search.Mz      `json:"mz"`
	FDR           float64        `json:"fdr"`
	MSM           float64        `json:"msm"`
	ImageCorr     float64        `json:"image_corr"`
	PatternMatch  float64        `json:"pattern_match"`
	Chaos         float64        `json:"chaos"`
	DatasetID     string         `json:"ds_id"`
	DatasetName   string         `json:"ds_name"`
	DatasetMeta   map[string]any `json:"ds_meta,omitempty"`
	DatabaseName  string         `json:"db_name"`
	DatabaseID    int64          `json:"db_id,omitempty"`
	JobID         int64          `json:"job_id,omitempty"`
	SumFormulaID  int64          `json:"sf_id,omitempty"`
}

// compoundSeparator joins the compound ids and names of one document.
const compoundSeparator = "|"

// Compounds pairs the candidate compound ids with their names.
func (d Document) Compounds() []Compound {
	ids := splitList(d.CompoundIDs)
	names := splitList(d.CompoundNames)

	out := make([]Compound, 0, len(names))
	for i, name := range names {
		c := Compound{Name: name}
		if i < len(ids) {
			c.ID = ids[i]
		}
		out = append(out, c)
	}
	return out
}

// SetCompounds stores compounds in the pipe-separated document form.
func (d *Document) SetCompounds(compounds []Compound) {
	ids := make([]string, 0, len(compounds))
	names := make([]string, 0, len(compounds))
	for _, c := range compounds {
		ids = append(ids, c.ID)
		names = append(names, c.Name)
	}
	d.CompoundIDs = strings.Join(ids, compoundSeparator)
	d.CompoundNames = strings.Join(names, compoundSeparator)
}

// Map exposes the copied dataset metadata to filters.MapAccessor.
func (d Document) Map() map[string]any {
	return d.DatasetMeta
}

// Compound is one candidate molecule of an annotation.
type Compound struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Hit is a document returned by a search, with its index id.
type Hit struct {
	ID       string   `json:"id"`
	Score    *float64 `json:"score,omitempty"`
	Document Document `json:"document"`
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, compoundSeparator)
}
