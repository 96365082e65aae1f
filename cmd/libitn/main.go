// Command libitn builds the C shared library:
//
//	go build -buildmode=c-shared -o libitn.so ./cmd/libitn
//
// Strings returned by the itn_normalize family are allocated with malloc and
// must be released with itn_free_string. itn_version returns a static string.
// A NULL argument yields a NULL result.
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/az-ai-labs/en-itn/internal/ffi"
)

// version is allocated once and never freed.
var version = C.CString(ffi.Version())

func goString(s *C.char) *string {
	if s == nil {
		return nil
	}
	out := C.GoString(s)
	return &out
}

func cString(s *string) *C.char {
	if s == nil {
		return nil
	}
	return C.CString(*s)
}

//export itn_normalize
func itn_normalize(input *C.char) *C.char {
	return cString(ffi.Default().Normalize(goString(input)))
}

//export itn_normalize_sentence
func itn_normalize_sentence(input *C.char) *C.char {
	return cString(ffi.Default().Sentence(goString(input)))
}

//export itn_normalize_sentence_with_max_span
func itn_normalize_sentence_with_max_span(input *C.char, maxSpan C.uint32_t) *C.char {
	return cString(ffi.Default().SentenceMaxSpan(goString(input), uint32(maxSpan)))
}

//export itn_add_rule
func itn_add_rule(spoken, written *C.char) {
	ffi.Default().AddRule(goString(spoken), goString(written))
}

//export itn_remove_rule
func itn_remove_rule(spoken *C.char) C.int32_t {
	return C.int32_t(ffi.Default().RemoveRule(goString(spoken)))
}

//export itn_clear_rules
func itn_clear_rules() {
	ffi.Default().ClearRules()
}

//export itn_rule_count
func itn_rule_count() C.uint32_t {
	return C.uint32_t(ffi.Default().RuleCount())
}

//export itn_free_string
func itn_free_string(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

//export itn_version
func itn_version() *C.char {
	return version
}

func main() {}
