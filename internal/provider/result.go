// Package provider defines the shared request/result types and the error
// classification used by all vendor adapters and the AI router.
package provider

// EmbedResult is the structured result of an embeddings call.
type EmbedResult struct {
	// Vectors holds one embedding per input text, in input order. The raw
	// vendor dimension is preserved here; the router normalizes it.
	Vectors [][]float64

	// Tokens is the vendor-reported input token count (0 if not reported).
	Tokens int

	// CostUSD is the attributed cost of the call.
	CostUSD float64
}

// GenerateRequest describes a text generation call.
type GenerateRequest struct {
	Prompt string

	// System primes the model; empty means vendor default.
	System string

	// MaxTokens caps the completion length; 0 means vendor default.
	MaxTokens int
}

// GenerateResult is the structured result of a text generation call.
type GenerateResult struct {
	Text    string
	Tokens  int
	CostUSD float64
}

// ImageEditRequest describes an image editing call.
type ImageEditRequest struct {
	// Image is the source image bytes.
	Image []byte

	// Mask optionally restricts the edit region (vendor-dependent).
	Mask []byte

	// Prompt describes the desired edit.
	Prompt string

	// Operation is the vendor operation name, e.g. "inpaint" or "outpaint".
	Operation string

	// Params carries extra vendor parameters, recorded in the audit row.
	Params map[string]any
}

// ImageEditResult is the structured result of an image editing call.
type ImageEditResult struct {
	// Image is the edited image bytes.
	Image []byte

	// ContentType is the MIME type of Image.
	ContentType string

	CostUSD float64
}
