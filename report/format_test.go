package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/varistat/errs"
)

func TestFormatFloat(t *testing.T) {
	require.Equal(t, "1.2346", FormatFloat(1.23456, 4))
	require.Equal(t, "-3", FormatFloat(-3, 0))
	require.Equal(t, NotAvailable, FormatFloat(math.NaN(), 4))
	require.Equal(t, NotAvailable, FormatFloat(math.Inf(1), 4))
	require.Equal(t, NotAvailable, FormatFloat(math.Inf(-1), 4))
}

func TestFormatOptional(t *testing.T) {
	v := 1.5
	require.Equal(t, "1.50", FormatOptional(&v, 2))
	require.Equal(t, NotAvailable, FormatOptional(nil, 2))

	inf := math.Inf(1)
	require.Equal(t, NotAvailable, FormatOptional(&inf, 2))
}

func TestFormatPValue(t *testing.T) {
	require.Equal(t, "0.0421", FormatPValue(0.04213, 4))
	require.Equal(t, "< 0.0001", FormatPValue(4.8e-5, 4))
	require.Equal(t, NotAvailable, FormatPValue(math.NaN(), 4))
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"":         FormatText,
		"text":     FormatText,
		"Markdown": FormatMarkdown,
		"md":       FormatMarkdown,
		"CSV":      FormatCSV,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseFormat("html")
	require.ErrorIs(t, err, errs.ErrInvalidOption)

	require.Equal(t, "markdown", FormatMarkdown.String())
	require.Equal(t, "unknown", Format(9).String())
}
