// Package dataset holds the typed observations consumed by the analysis packages.
//
// Rows arrive from ingestion as string records and are validated once: every
// column is classified as numeric or categorical and each cell becomes a tagged
// Value. The analysis packages then read columns through typed accessors instead
// of inspecting loosely typed maps.
//
// # Usage
//
//	rows, err := dataset.FromRecords(header, records)
//	if err != nil {
//	    return err
//	}
//	weights, err := rows.Numeric("Weight")
//
// # Archives
//
// A numeric column can be packed into a compact, checksummed binary archive with
// EncodeSample and restored with DecodeSample. The layout is:
//
//	magic "VSA1" | compression (1 byte) | count (uint32 LE) | xxHash64 of raw payload (uint64 LE) | compressed payload
//
// The raw payload is count little-endian IEEE 754 float64 words.
package dataset
