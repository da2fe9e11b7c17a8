package marrow

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// CreateSchema creates an Arrow schema from result-set column descriptors.
func CreateSchema(columns []Column) (*arrow.Schema, error) {
	fields := make([]arrow.Field, len(columns))

	for i, col := range columns {
		arrowType, err := columnToArrowType(col)
		if err != nil {
			return nil, err
		}

		fields[i] = arrow.Field{
			Name:     col.Name,
			Type:     arrowType,
			Nullable: true, // SQL columns are nullable by default
		}
	}

	return arrow.NewSchema(fields, nil), nil
}

// columnToArrowType maps a wire column descriptor to an Arrow type.
func columnToArrowType(col Column) (arrow.DataType, error) {
	switch col.Type {
	case TypeTime:
		return arrow.FixedWidthTypes.Time64us, nil
	case TypeDateTime, TypeTimestamp:
		return &arrow.TimestampType{Unit: arrow.Microsecond}, nil
	case TypeVarchar, TypeVarString, TypeString, TypeEnum, TypeSet:
		return arrow.BinaryTypes.String, nil
	case TypeBlob, TypeTinyBlob, TypeMediumBlob, TypeLongBlob:
		if col.Binary {
			return arrow.BinaryTypes.Binary, nil
		}
		return arrow.BinaryTypes.String, nil
	default:
		return nil, fmt.Errorf("unsupported column type for Arrow schema: %s", col.Type)
	}
}
