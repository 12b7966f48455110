package format

type (
	ValueType       uint8
	CompressionType uint8
)

const (
	TypeInt    ValueType = 0x1 // TypeInt represents a signed 32-bit integer sample.
	TypeFloat  ValueType = 0x2 // TypeFloat represents a 64-bit floating point sample.
	TypeBool   ValueType = 0x3 // TypeBool represents a boolean sample.
	TypeString ValueType = 0x4 // TypeString represents a UTF-8 string sample.

	CompressionDeflate CompressionType = 0x1 // CompressionDeflate represents zlib deflate compression.
	CompressionZstd    CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2      CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4     CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionNone    CompressionType = 0x5 // CompressionNone represents no compression.
)

func (v ValueType) String() string {
	switch v {
	case TypeInt:
		return "Int"
	case TypeFloat:
		return "Float"
	case TypeBool:
		return "Bool"
	case TypeString:
		return "String"
	default:
		return "Unknown"
	}
}

// Numeric reports whether values of this type participate in delta encoding
// and factor scaling. Bool and string samples are always emitted raw.
func (v ValueType) Numeric() bool {
	return v == TypeInt || v == TypeFloat
}

func (c CompressionType) String() string {
	switch c {
	case CompressionDeflate:
		return "Deflate"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionNone:
		return "None"
	default:
		return "Unknown"
	}
}
