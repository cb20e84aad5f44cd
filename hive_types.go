package main

import (
	"github.com/hamba/avro/v2"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/xitongsys/parquet-go/parquet"
)

const (
	HIVE_TYPE_BOOLEAN = "BOOLEAN"
	HIVE_TYPE_INT     = "INT"
	HIVE_TYPE_BIGINT  = "BIGINT"
	HIVE_TYPE_FLOAT   = "FLOAT"
	HIVE_TYPE_DOUBLE  = "DOUBLE"
	HIVE_TYPE_STRING  = "STRING"
	HIVE_TYPE_BINARY  = "BINARY"

	// OIDs pgtype does not export constants for
	PG_OID_XML   = 142
	PG_OID_MONEY = 790
)

var HIVE_TYPE_BY_PG_OID = map[uint32]string{
	pgtype.BoolOID:        HIVE_TYPE_BOOLEAN,
	pgtype.Int2OID:        HIVE_TYPE_INT,
	pgtype.Int4OID:        HIVE_TYPE_INT,
	pgtype.Int8OID:        HIVE_TYPE_BIGINT,
	pgtype.Float4OID:      HIVE_TYPE_DOUBLE,
	pgtype.Float8OID:      HIVE_TYPE_DOUBLE,
	pgtype.NumericOID:     HIVE_TYPE_DOUBLE,
	PG_OID_MONEY:          HIVE_TYPE_DOUBLE,
	pgtype.TextOID:        HIVE_TYPE_STRING,
	pgtype.VarcharOID:     HIVE_TYPE_STRING,
	pgtype.BPCharOID:      HIVE_TYPE_STRING,
	pgtype.NameOID:        HIVE_TYPE_STRING,
	pgtype.UUIDOID:        HIVE_TYPE_STRING,
	pgtype.JSONOID:        HIVE_TYPE_STRING,
	pgtype.JSONBOID:       HIVE_TYPE_STRING,
	PG_OID_XML:            HIVE_TYPE_STRING,
	pgtype.DateOID:        HIVE_TYPE_STRING,
	pgtype.TimeOID:        HIVE_TYPE_STRING,
	pgtype.TimetzOID:      HIVE_TYPE_STRING,
	pgtype.TimestampOID:   HIVE_TYPE_STRING,
	pgtype.TimestamptzOID: HIVE_TYPE_STRING,
	pgtype.IntervalOID:    HIVE_TYPE_STRING,
	pgtype.ByteaOID:       HIVE_TYPE_BINARY,
}

// Source types whose Hive mapping is a lossy approximation: date/time values
// land as strings, arbitrary-precision numerics as doubles.
var IMPROVISED_PG_OIDS = NewSet([]uint32{
	pgtype.NumericOID,
	PG_OID_MONEY,
	pgtype.DateOID,
	pgtype.TimeOID,
	pgtype.TimetzOID,
	pgtype.TimestampOID,
	pgtype.TimestamptzOID,
	pgtype.IntervalOID,
})

// PgHiveType returns the Hive type token for a PostgreSQL type OID, or ""
// when no mapping exists.
func PgHiveType(typeOid uint32) string {
	return HIVE_TYPE_BY_PG_OID[typeOid]
}

func PgHiveTypeImprovised(typeOid uint32) bool {
	return IMPROVISED_PG_OIDS.Contains(typeOid)
}

var HIVE_TYPE_BY_AVRO_TYPE = map[avro.Type]string{
	avro.Boolean: HIVE_TYPE_BOOLEAN,
	avro.Int:     HIVE_TYPE_INT,
	avro.Long:    HIVE_TYPE_BIGINT,
	avro.Float:   HIVE_TYPE_FLOAT,
	avro.Double:  HIVE_TYPE_DOUBLE,
	avro.String:  HIVE_TYPE_STRING,
	avro.Enum:    HIVE_TYPE_STRING,
	avro.Bytes:   HIVE_TYPE_BINARY,
	avro.Fixed:   HIVE_TYPE_BINARY,
}

// AvroHiveType returns the Hive type token for an Avro logical type, or ""
// when no mapping exists. Nullable unions must be unwrapped by the caller.
func AvroHiveType(avroType avro.Type) string {
	return HIVE_TYPE_BY_AVRO_TYPE[avroType]
}

// ParquetHiveType returns the Hive type token for a Parquet schema element,
// or "" when no mapping exists.
func ParquetHiveType(element *parquet.SchemaElement) string {
	if element.Type == nil {
		return ""
	}

	if element.ConvertedType != nil {
		switch *element.ConvertedType {
		case parquet.ConvertedType_UTF8:
			return HIVE_TYPE_STRING
		case parquet.ConvertedType_DECIMAL:
			return HIVE_TYPE_DOUBLE
		case parquet.ConvertedType_DATE, parquet.ConvertedType_TIMESTAMP_MILLIS, parquet.ConvertedType_TIMESTAMP_MICROS:
			return HIVE_TYPE_STRING
		}
	}

	switch *element.Type {
	case parquet.Type_BOOLEAN:
		return HIVE_TYPE_BOOLEAN
	case parquet.Type_INT32:
		return HIVE_TYPE_INT
	case parquet.Type_INT64:
		return HIVE_TYPE_BIGINT
	case parquet.Type_INT96:
		return HIVE_TYPE_STRING
	case parquet.Type_FLOAT:
		return HIVE_TYPE_FLOAT
	case parquet.Type_DOUBLE:
		return HIVE_TYPE_DOUBLE
	case parquet.Type_BYTE_ARRAY, parquet.Type_FIXED_LEN_BYTE_ARRAY:
		return HIVE_TYPE_BINARY
	}

	return ""
}
