package main

import (
	"flag"
	"os"
	"slices"
	"strings"
)

const (
	ENV_LOG_LEVEL     = "HIVEBRIDGE_LOG_LEVEL"
	ENV_STORAGE_TYPE  = "HIVEBRIDGE_STORAGE_TYPE"
	ENV_WAREHOUSE_DIR = "HIVEBRIDGE_WAREHOUSE_DIR"
	ENV_HIVE_BINARY   = "HIVEBRIDGE_HIVE_BINARY"

	ENV_AWS_REGION            = "AWS_REGION"
	ENV_AWS_S3_BUCKET         = "AWS_S3_BUCKET"
	ENV_AWS_ACCESS_KEY_ID     = "AWS_ACCESS_KEY_ID"
	ENV_AWS_SECRET_ACCESS_KEY = "AWS_SECRET_ACCESS_KEY"

	ENV_PG_DATABASE_URL = "PG_DATABASE_URL"

	DEFAULT_LOG_LEVEL    = "INFO"
	DEFAULT_STORAGE_TYPE = "LOCAL"
	DEFAULT_FILE_LAYOUT  = "TEXT"
	DEFAULT_HIVE_BINARY  = "hive"

	// ',' and '\n', the delimiters text imports land with unless overridden.
	DEFAULT_FIELD_DELIMITER  = 44
	DEFAULT_RECORD_DELIMITER = 10

	STORAGE_TYPE_LOCAL = "LOCAL"
	STORAGE_TYPE_S3    = "S3"

	FILE_LAYOUT_TEXT    = "TEXT"
	FILE_LAYOUT_PARQUET = "PARQUET"

	COMPRESSION_CODEC_LZOP       = "lzop"
	COMPRESSION_CODEC_LZOP_CLASS = "com.hadoop.compression.lzo.LzopCodec"
)

var STORAGE_TYPES = []string{STORAGE_TYPE_LOCAL, STORAGE_TYPE_S3}
var FILE_LAYOUTS = []string{FILE_LAYOUT_TEXT, FILE_LAYOUT_PARQUET}

type AwsConfig struct {
	Region          string
	S3Bucket        string
	AccessKeyId     string
	SecretAccessKey string
}

type PgConfig struct {
	DatabaseUrl string
}

type HiveConfig struct {
	Table               string
	Database            string // optional
	ExternalTableDir    string // optional; set implies an external table
	PartitionKey        string // optional
	PartitionValue      string // optional
	Overwrite           bool   // LOAD DATA ... OVERWRITE
	FailIfTableExists   bool   // omit IF NOT EXISTS
	CommentsEnabled     bool
	ColumnTypeOverrides *OrderedMap // column name -> literal Hive type
}

type Config struct {
	LogLevel         string
	StorageType      string
	InputTable       string
	SqlQuery         string
	Columns          []string // optional explicit column list
	FileLayout       string
	AvroSchemaPath   string
	ParquetFilePath  string
	WarehouseDir     string
	TargetDir        string
	FieldDelimiter   int
	RecordDelimiter  int
	CompressionCodec string
	OutputScriptPath string
	Execute          bool
	HiveBinary       string
	Hive             HiveConfig
	Aws              AwsConfig
	Pg               PgConfig
}

type configParseValues struct {
	columns         string
	mapColumnHive   string
	fieldDelimiter  string
	recordDelimiter string
}

var _config Config
var _configParseValues configParseValues

func init() {
	registerFlags()
}

func registerFlags() {
	flag.StringVar(&_config.LogLevel, "log-level", os.Getenv(ENV_LOG_LEVEL), "Log level: \"ERROR\", \"WARN\", \"INFO\", \"DEBUG\". Default: \""+DEFAULT_LOG_LEVEL+"\"")
	flag.StringVar(&_config.StorageType, "storage-type", os.Getenv(ENV_STORAGE_TYPE), "Storage type holding the landed data: \"LOCAL\", \"S3\". Default: \""+DEFAULT_STORAGE_TYPE+"\"")
	flag.StringVar(&_config.InputTable, "table", "", "Source table whose schema is imported")
	flag.StringVar(&_config.SqlQuery, "query", "", "Ad-hoc SQL query whose result-set schema is imported (alternative to --table)")
	flag.StringVar(&_configParseValues.columns, "columns", "", "(Optional) Comma-separated list of columns to import, overriding source metadata")
	flag.StringVar(&_config.FileLayout, "file-layout", "", "Layout of the landed data: \"TEXT\", \"PARQUET\". Default: \""+DEFAULT_FILE_LAYOUT+"\"")
	flag.StringVar(&_config.AvroSchemaPath, "avro-schema", "", "(Optional) Path to the Avro schema describing PARQUET-layout data")
	flag.StringVar(&_config.ParquetFilePath, "parquet-file", "", "(Optional) Landed Parquet file to derive the PARQUET-layout schema from")
	flag.StringVar(&_config.WarehouseDir, "warehouse-dir", os.Getenv(ENV_WAREHOUSE_DIR), "(Optional) Base directory the data landed under")
	flag.StringVar(&_config.TargetDir, "target-dir", "", "(Optional) Directory the data landed in, relative to --warehouse-dir")
	flag.StringVar(&_configParseValues.fieldDelimiter, "field-delimiter", "", "Field delimiter byte value [0-127]. Default: "+IntToString(DEFAULT_FIELD_DELIMITER))
	flag.StringVar(&_configParseValues.recordDelimiter, "record-delimiter", "", "Record delimiter byte value [0-127]. Default: "+IntToString(DEFAULT_RECORD_DELIMITER))
	flag.StringVar(&_config.CompressionCodec, "compression-codec", "", "(Optional) Compression codec the data was written with (e.g. \"lzop\")")
	flag.StringVar(&_config.OutputScriptPath, "output-script", "", "(Optional) Where to write the generated statement script")
	flag.BoolVar(&_config.Execute, "execute", false, "Run the generated script with the Hive CLI after writing it")
	flag.StringVar(&_config.HiveBinary, "hive-binary", os.Getenv(ENV_HIVE_BINARY), "Hive CLI binary used with --execute. Default: \""+DEFAULT_HIVE_BINARY+"\"")
	flag.StringVar(&_config.Hive.Table, "hive-table", "", "Hive table to create. Default: the --table name")
	flag.StringVar(&_config.Hive.Database, "hive-database", "", "(Optional) Hive database to create the table in")
	flag.StringVar(&_config.Hive.ExternalTableDir, "external-table-dir", "", "(Optional) Location clause for an external Hive table")
	flag.StringVar(&_config.Hive.PartitionKey, "hive-partition-key", "", "(Optional) Partition key to declare on the Hive table")
	flag.StringVar(&_config.Hive.PartitionValue, "hive-partition-value", "", "(Optional) Partition value used in the LOAD DATA statement")
	flag.BoolVar(&_config.Hive.Overwrite, "hive-overwrite", false, "Overwrite existing data in the Hive table when loading")
	flag.BoolVar(&_config.Hive.FailIfTableExists, "create-hive-table", false, "Fail if the Hive table already exists (omits IF NOT EXISTS)")
	flag.BoolVar(&_config.Hive.CommentsEnabled, "hive-table-comment", false, "Add an import-timestamp comment to the created table")
	flag.StringVar(&_configParseValues.mapColumnHive, "map-column-hive", "", "(Optional) Comma-separated column=HiveType overrides (e.g. \"id=BIGINT,price=DECIMAL\")")
	flag.StringVar(&_config.Pg.DatabaseUrl, "pg-database-url", os.Getenv(ENV_PG_DATABASE_URL), "PostgreSQL database URL of the source system")
	flag.StringVar(&_config.Aws.Region, "aws-region", os.Getenv(ENV_AWS_REGION), "AWS region")
	flag.StringVar(&_config.Aws.S3Bucket, "aws-s3-bucket", os.Getenv(ENV_AWS_S3_BUCKET), "AWS S3 bucket name")
	flag.StringVar(&_config.Aws.AccessKeyId, "aws-access-key-id", os.Getenv(ENV_AWS_ACCESS_KEY_ID), "AWS access key ID")
	flag.StringVar(&_config.Aws.SecretAccessKey, "aws-secret-access-key", os.Getenv(ENV_AWS_SECRET_ACCESS_KEY), "AWS secret access key")
}

func parseFlags() {
	flag.Parse()

	if _config.LogLevel == "" {
		_config.LogLevel = DEFAULT_LOG_LEVEL
	} else if !slices.Contains(LOG_LEVELS, _config.LogLevel) {
		panic("Invalid log level " + _config.LogLevel + ". Must be one of " + strings.Join(LOG_LEVELS, ", "))
	}
	if _config.StorageType == "" {
		_config.StorageType = DEFAULT_STORAGE_TYPE
	} else if !slices.Contains(STORAGE_TYPES, _config.StorageType) {
		panic("Invalid storage type " + _config.StorageType + ". Must be one of " + strings.Join(STORAGE_TYPES, ", "))
	}
	if _config.StorageType == STORAGE_TYPE_S3 {
		if _config.Aws.Region == "" {
			panic("AWS region is required")
		}
		if _config.Aws.S3Bucket == "" {
			panic("AWS S3 bucket name is required")
		}
		if _config.Aws.AccessKeyId == "" {
			panic("AWS access key ID is required")
		}
		if _config.Aws.SecretAccessKey == "" {
			panic("AWS secret access key is required")
		}
	}
	if _config.FileLayout == "" {
		_config.FileLayout = DEFAULT_FILE_LAYOUT
	} else if !slices.Contains(FILE_LAYOUTS, _config.FileLayout) {
		panic("Invalid file layout " + _config.FileLayout + ". Must be one of " + strings.Join(FILE_LAYOUTS, ", "))
	}
	if _config.InputTable != "" && _config.SqlQuery != "" {
		panic("Cannot specify both --table and --query")
	}
	if _config.HiveBinary == "" {
		_config.HiveBinary = DEFAULT_HIVE_BINARY
	}
	if _config.Hive.Table == "" {
		_config.Hive.Table = _config.InputTable
	}
	if _configParseValues.columns != "" {
		_config.Columns = strings.Split(_configParseValues.columns, ",")
	} else {
		_config.Columns = nil
	}
	_config.FieldDelimiter = parseDelimiterValue(_configParseValues.fieldDelimiter, DEFAULT_FIELD_DELIMITER)
	_config.RecordDelimiter = parseDelimiterValue(_configParseValues.recordDelimiter, DEFAULT_RECORD_DELIMITER)
	_config.Hive.ColumnTypeOverrides = parseColumnTypeOverrides(_configParseValues.mapColumnHive)

	_configParseValues = configParseValues{}
}

func parseDelimiterValue(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	parsed, err := StringToInt(value)
	if err != nil {
		panic("Invalid delimiter value " + value + ". Must be a byte value between 0 and 127")
	}

	return parsed
}

func parseColumnTypeOverrides(mapping string) *OrderedMap {
	overrides := NewOrderedMap(nil)
	if mapping == "" {
		return overrides
	}

	for _, pair := range strings.Split(mapping, ",") {
		column, hiveType, found := strings.Cut(pair, "=")
		if !found || column == "" || hiveType == "" {
			panic("Invalid --map-column-hive entry " + pair + ". Must be in column=TYPE format")
		}
		overrides.Set(strings.TrimSpace(column), strings.TrimSpace(hiveType))
	}

	return overrides
}

func LoadConfig(reRegisterFlags ...bool) *Config {
	if reRegisterFlags != nil && reRegisterFlags[0] {
		flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
		registerFlags()
	}
	parseFlags()
	return &_config
}
