package openai

import "strings"

// Vendor is an OpenAI-compatible chat completions endpoint.
type Vendor struct {
	Name    string
	BaseURL string // empty means the SDK default
	Model   string
}

var (
	VendorOpenAI   = Vendor{Name: "openai", Model: DefaultModel}
	VendorDeepSeek = Vendor{Name: "deepseek", BaseURL: "https://api.deepseek.com/v1", Model: "deepseek-chat"}
	VendorQwen     = Vendor{Name: "qwen", BaseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1", Model: "qwen-plus"}
	VendorGemini   = Vendor{Name: "gemini", BaseURL: "https://generativelanguage.googleapis.com/v1beta/openai/", Model: "gemini-2.5-flash"}
)

var vendors = map[string]Vendor{
	"openai":   VendorOpenAI,
	"deepseek": VendorDeepSeek,
	"qwen":     VendorQwen,
	"alibaba":  VendorQwen,
	"gemini":   VendorGemini,
}

// LookupVendor resolves a provider name, case-insensitively.
func LookupVendor(name string) (Vendor, bool) {
	v, ok := vendors[strings.ToLower(strings.TrimSpace(name))]
	return v, ok
}

// Apply fills the vendor's endpoint and model where cfg leaves them empty.
func (v Vendor) Apply(cfg Config) Config {
	if cfg.BaseURL == "" {
		cfg.BaseURL = v.BaseURL
	}
	if cfg.Model == "" {
		cfg.Model = v.Model
	}
	return cfg
}
