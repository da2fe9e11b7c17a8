package marrow

import "fmt"

// DataType is the server-declared column type tag from the MariaDB/MySQL
// wire protocol. The numeric values are fixed by the protocol and are also
// used when declaring parameter types in binary (prepared statement) packets.
type DataType uint8

const (
	TypeDecimal    DataType = 0
	TypeTiny       DataType = 1
	TypeShort      DataType = 2
	TypeLong       DataType = 3
	TypeFloat      DataType = 4
	TypeDouble     DataType = 5
	TypeNull       DataType = 6
	TypeTimestamp  DataType = 7
	TypeLongLong   DataType = 8
	TypeInt24      DataType = 9
	TypeDate       DataType = 10
	TypeTime       DataType = 11
	TypeDateTime   DataType = 12
	TypeYear       DataType = 13
	TypeNewDate    DataType = 14
	TypeVarchar    DataType = 15
	TypeBit        DataType = 16
	TypeJSON       DataType = 245
	TypeNewDecimal DataType = 246
	TypeEnum       DataType = 247
	TypeSet        DataType = 248
	TypeTinyBlob   DataType = 249
	TypeMediumBlob DataType = 250
	TypeLongBlob   DataType = 251
	TypeBlob       DataType = 252
	TypeVarString  DataType = 253
	TypeString     DataType = 254
	TypeGeometry   DataType = 255
)

var dataTypeNames = map[DataType]string{
	TypeDecimal:    "DECIMAL",
	TypeTiny:       "TINYINT",
	TypeShort:      "SMALLINT",
	TypeLong:       "INTEGER",
	TypeFloat:      "FLOAT",
	TypeDouble:     "DOUBLE",
	TypeNull:       "NULL",
	TypeTimestamp:  "TIMESTAMP",
	TypeLongLong:   "BIGINT",
	TypeInt24:      "MEDIUMINT",
	TypeDate:       "DATE",
	TypeTime:       "TIME",
	TypeDateTime:   "DATETIME",
	TypeYear:       "YEAR",
	TypeNewDate:    "DATE",
	TypeVarchar:    "VARCHAR",
	TypeBit:        "BIT",
	TypeJSON:       "JSON",
	TypeNewDecimal: "DECIMAL",
	TypeEnum:       "ENUM",
	TypeSet:        "SET",
	TypeTinyBlob:   "TINYBLOB",
	TypeMediumBlob: "MEDIUMBLOB",
	TypeLongBlob:   "LONGBLOB",
	TypeBlob:       "BLOB",
	TypeVarString:  "VARSTRING",
	TypeString:     "STRING",
	TypeGeometry:   "GEOMETRY",
}

// String returns the SQL-facing name of the type, as used in error messages.
func (t DataType) String() string {
	if name, ok := dataTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint8(t))
}

// Column describes one result-set column: the server-declared wire type and
// whether the column stores raw binary bytes (binary collation) rather than
// collated text. A Column is created once per result set and shared read-only
// across all rows.
type Column struct {
	Name   string
	Type   DataType
	Binary bool
}
