package xerrors

// Well-known keys for ErrorKV and WrapKV.
const (
	KeyReason    = "Reason"
	KeyTableName = "TableName"
	KeyCellPos   = "CellPos"
	KeyRange     = "Range"
	KeyNamedName = "NamedRangeName"
)
