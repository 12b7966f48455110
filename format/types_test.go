package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueTypeString(t *testing.T) {
	require.Equal(t, "Int", TypeInt.String())
	require.Equal(t, "Float", TypeFloat.String())
	require.Equal(t, "Bool", TypeBool.String())
	require.Equal(t, "String", TypeString.String())
	require.Equal(t, "Unknown", ValueType(0x99).String())
}

func TestCompressionTypeString(t *testing.T) {
	require.Equal(t, "Deflate", CompressionDeflate.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Unknown", CompressionType(0x99).String())
}

func TestValueTypeNumeric(t *testing.T) {
	require.True(t, TypeInt.Numeric())
	require.True(t, TypeFloat.Numeric())
	require.False(t, TypeBool.Numeric())
	require.False(t, TypeString.Numeric())
}
