package record

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeEmptyRecord(t *testing.T) {
	rec := createTestRecord(t)

	cont := decodeContainer(t, rec)
	require.Empty(t, cont.H)
	require.Equal(t, []float64{1}, cont.F)
	require.Empty(t, cont.S)
}

func TestEncodeDeltaValues(t *testing.T) {
	rec := createTestRecord(t)
	require.NoError(t, rec.AddInt("machine/engine/rpm", 5, 10))
	require.NoError(t, rec.AddInt("machine/engine/rpm", 8, 20))

	cont := decodeContainer(t, rec)
	require.Equal(t, []string{"machine/engine/rpm"}, cont.H)
	require.Equal(t, []float64{1, 1}, cont.F)
	// Row 1: full timestamp and value. Row 2: deltas against row 1.
	require.Equal(t, []any{int64(10), int64(5), int64(10), int64(3)}, cont.S)
}

func TestEncodeMissingValueDefaults(t *testing.T) {
	rec := createTestRecord(t)
	require.NoError(t, rec.AddInt("a", 1, 10))
	require.NoError(t, rec.AddInt("a", 2, 20))
	require.NoError(t, rec.AddInt("b", 9, 20))

	cont := decodeContainer(t, rec)
	require.Equal(t, []string{"a", "b"}, cont.H)
	// Row 1: b has no sample, placeholder 0. Row 2: b's delta baseline is the
	// placeholder row above, so the full value comes through.
	require.Equal(t, []any{
		int64(10), int64(1), int64(0),
		int64(10), int64(1), int64(9),
	}, cont.S)
}

func TestEncodeFloatDeltas(t *testing.T) {
	rec := createTestRecord(t)
	require.NoError(t, rec.AddFloat("temp", 21.5, 100))
	require.NoError(t, rec.AddFloat("temp", 23.0, 200))

	cont := decodeContainer(t, rec)
	require.Len(t, cont.S, 4)
	require.Equal(t, int64(100), cont.S[0])
	require.InDelta(t, 21.5, cont.S[1], 1e-12)
	require.Equal(t, int64(100), cont.S[2])
	require.InDelta(t, 1.5, cont.S[3], 1e-12)
}

func TestEncodeBoolStringRaw(t *testing.T) {
	rec := createTestRecord(t)
	require.NoError(t, rec.AddBool("door", true, 10))
	require.NoError(t, rec.AddString("state", "open", 10))
	require.NoError(t, rec.AddBool("door", true, 20))
	require.NoError(t, rec.AddString("state", "closed", 20))

	cont := decodeContainer(t, rec)
	require.Equal(t, []float64{1, 0, 0}, cont.F)
	// Never delta encoded, every row carries the raw value.
	require.Equal(t, []any{
		int64(10), true, "open",
		int64(10), true, "closed",
	}, cont.S)
}

func TestEncodeTimestampFactor(t *testing.T) {
	// Millisecond timestamps scaled down to seconds on the wire.
	rec := createTestRecord(t, WithTimestampFactor(0.001))
	require.NoError(t, rec.AddInt("x", 1, 5000))
	require.NoError(t, rec.AddInt("x", 2, 7000))

	cont := decodeContainer(t, rec)
	require.Equal(t, []float64{0.001, 1}, cont.F)
	require.Equal(t, []any{int64(5), int64(1), int64(2), int64(1)}, cont.S)
}

func TestEncodeColumnFactor(t *testing.T) {
	rec := createTestRecord(t)
	require.NoError(t, rec.AddFloat("voltage", 12.5, 10))
	require.NoError(t, rec.SetFactor("voltage", 10))
	require.NoError(t, rec.AddFloat("voltage", 12.7, 20))

	cont := decodeContainer(t, rec)
	require.Equal(t, []float64{1, 10}, cont.F)
	require.InDelta(t, 125.0, cont.S[1], 1e-9)
	require.InDelta(t, 2.0, cont.S[3], 1e-9)
}

func TestEncodeHeaderFactorRelation(t *testing.T) {
	rec := createTestRecord(t)
	require.NoError(t, rec.AddInt("a", 1, 10))
	require.NoError(t, rec.AddFloat("b", 1, 10))
	require.NoError(t, rec.AddBool("c", true, 10))

	cont := decodeContainer(t, rec)
	require.Len(t, cont.F, len(cont.H)+1)
	require.Len(t, cont.S, rec.TimestampCount()*(len(cont.H)+1))
}

func TestEncodeRowMajorLayout(t *testing.T) {
	rec := createTestRecord(t)
	require.NoError(t, rec.AddInt("a", 1, 30))
	require.NoError(t, rec.AddInt("b", 2, 10))
	require.NoError(t, rec.AddInt("a", 3, 20))

	cont := decodeContainer(t, rec)
	require.Equal(t, []string{"a", "b"}, cont.H)
	// Rows in timestamp order regardless of insertion order; absent samples
	// emit the type default.
	require.Equal(t, []any{
		int64(10), int64(0), int64(2), // a absent at ts=10
		int64(10), int64(3), int64(0), // a deltas against the 0 stand-in
		int64(10), int64(-2), int64(0), // 1-3 against a's value at ts=20
	}, cont.S)
}
