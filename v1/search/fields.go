package search

// Annotation index field names.
const (
	FieldDatabase      = "db_name"
	FieldDatasetID     = "ds_id"
	FieldDatasetName   = "ds_name"
	FieldDatasetMeta   = "ds_meta"
	FieldMz            = "mz"
	FieldScore         = "msm"
	FieldFDR           = "fdr"
	FieldSumFormula    = "sf"
	FieldAdduct        = "adduct"
	FieldCompoundNames = "comp_names"
)
