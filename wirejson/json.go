package wirejson

import (
	"runtime"

	"github.com/bytedance/sonic"
	jsoniter "github.com/json-iterator/go"
)

// UseSonic selects sonic for encoding on platforms it has a JIT for.
const UseSonic = runtime.GOARCH == "amd64" && runtime.GOOS == "linux"

// Decoding always goes through json-iterator in standard library mode so that
// explicit nulls reach custom decoders the same way on every platform.
var decoder = jsoniter.ConfigCompatibleWithStandardLibrary

func Unmarshal(data []byte, v any) error {
	return decoder.Unmarshal(data, v)
}

func Marshal(v any) ([]byte, error) {
	if UseSonic {
		return sonic.ConfigStd.Marshal(v)
	}

	return decoder.Marshal(v)
}

// MarshalIndent is used for human facing output.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	if UseSonic {
		return sonic.ConfigStd.MarshalIndent(v, prefix, indent)
	}

	return decoder.MarshalIndent(v, prefix, indent)
}
