package logging

// Standardized field names for structured logging.
// These constants keep log output consistent across packages so the
// dashboard's log pipeline can filter on them.
const (
	FieldFile        = "file_path"
	FieldMonth       = "month"
	FieldCategory    = "category"
	FieldSubcategory = "subcategory"
	FieldMerchant    = "merchant"
	FieldAmount      = "amount"
	FieldFreq        = "freq"
	FieldReason      = "reason"
	FieldCount       = "count"
	FieldLayer       = "config_layer"
	FieldDate        = "date"
)
