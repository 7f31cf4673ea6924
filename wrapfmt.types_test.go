package wrapfmt

import (
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWrapperKind(t *testing.T) {
	for _, kind := range AllWrapperKinds() {
		parsed, err := ParseWrapperKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	parsed, err := ParseWrapperKind(" Double_Curly ")
	require.NoError(t, err)
	assert.Equal(t, WrapperDoubleCurly, parsed)

	_, err = ParseWrapperKind("angle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnknownWrapperKind)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	kind, ok := customErr.GetMetadata(MetaKeyKind)
	assert.True(t, ok)
	assert.Equal(t, "angle", kind)
}

func TestParseWrapperKinds(t *testing.T) {
	kinds, err := ParseWrapperKinds([]string{"curly", "dollar_curly"})
	require.NoError(t, err)
	assert.Equal(t, []WrapperKind{WrapperCurly, WrapperDollarCurly}, kinds)

	_, err = ParseWrapperKinds([]string{"curly", "nope"})
	require.Error(t, err)
}

func TestParseErrorStrategy(t *testing.T) {
	tests := []struct {
		name     string
		expected ErrorStrategy
	}{
		{"throw", ErrorStrategyThrow},
		{"keepraw", ErrorStrategyKeepRaw},
		{"remove", ErrorStrategyRemove},
		{"log", ErrorStrategyLog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy, err := ParseErrorStrategy(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, strategy)
			assert.Equal(t, tt.name, strategy.String())
		})
	}

	strategy, err := ParseErrorStrategy("ignore")
	require.Error(t, err)
	assert.Equal(t, ErrorStrategyThrow, strategy)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	value, ok := customErr.GetMetadata(MetaKeyStrategy)
	assert.True(t, ok)
	assert.Equal(t, "ignore", value)
}

func TestAllWrapperKinds(t *testing.T) {
	assert.Equal(t, []WrapperKind{
		WrapperTripleCurly,
		WrapperDollarCurly,
		WrapperDoubleCurly,
		WrapperHashCurly,
		WrapperPercentCurly,
		WrapperCurly,
	}, AllWrapperKinds())
}
