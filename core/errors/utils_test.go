// File: utils_test.go
// Title: Unit Tests for the Standard Error API
// Description: Unit tests for the error builder, the standardized
//              constructors and the module/operation analysis helpers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial test implementation

package errors

import (
	stderrors "errors"
	"strings"
	"testing"

	dserror "github.com/msto63/dynstr/core/error"
)

func TestErrorBuilderDefaults(t *testing.T) {
	err := NewErrorBuilder(ModuleDynstr).Operation("concat").Build()

	if want := "dynstr.concat failed"; err.Message() != want {
		t.Errorf("Message() = %q; want %q", err.Message(), want)
	}
	if want := dserror.Code("DYNSTR_CONCAT_FAILED"); err.Code() != want {
		t.Errorf("Code() = %v; want %v", err.Code(), want)
	}
	if GetErrorModule(err) != ModuleDynstr {
		t.Errorf("module detail = %q; want %q", GetErrorModule(err), ModuleDynstr)
	}
}

func TestErrorBuilderWithCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := NewErrorBuilder(ModuleConfig).
		Operation("load").
		Messagef("cannot load %s", "app.toml").
		Cause(cause).
		Code(CodeConfigParseError).
		Severity(dserror.SeverityHigh).
		Build()

	if !stderrors.Is(err, cause) {
		t.Error("built error lost its cause")
	}
	if err.Severity() != dserror.SeverityHigh {
		t.Errorf("Severity() = %v; want high", err.Severity())
	}
	if !strings.Contains(err.Error(), "app.toml") {
		t.Errorf("Error() = %q; want it to mention the file", err.Error())
	}
}

func TestDynstrIndexOutOfRange(t *testing.T) {
	err := DynstrIndexOutOfRange("insert", 9, 3)

	if !dserror.HasCode(err, dserror.Code(CodeDynstrIndexOutOfRange)) {
		t.Errorf("Code() = %v; want %s", err.Code(), CodeDynstrIndexOutOfRange)
	}
	if !IsModuleOperation(err, ModuleDynstr, "insert") {
		t.Errorf("not attributed to dynstr.insert: %v", err)
	}
	if idx, ok := err.Detail("index"); !ok || idx != 9 {
		t.Errorf("Detail(index) = %v, %v; want 9, true", idx, ok)
	}
	if !strings.Contains(err.Error(), "9") || !strings.Contains(err.Error(), "3") {
		t.Errorf("message should name index and length: %q", err.Error())
	}
}

func TestDynstrRangeInvalid(t *testing.T) {
	err := DynstrRangeInvalid("remove", 2, 1, 5)

	if !dserror.HasCode(err, dserror.Code(CodeDynstrRangeInvalid)) {
		t.Errorf("Code() = %v; want %s", err.Code(), CodeDynstrRangeInvalid)
	}
	if GetErrorOperation(err) != "remove" {
		t.Errorf("operation = %q; want remove", GetErrorOperation(err))
	}
}

func TestDynstrEmptyTarget(t *testing.T) {
	err := DynstrEmptyTarget("replace")

	if !dserror.HasCode(err, dserror.Code(CodeDynstrEmptyTarget)) {
		t.Errorf("Code() = %v; want %s", err.Code(), CodeDynstrEmptyTarget)
	}
	if !IsModuleError(err, ModuleDynstr) {
		t.Error("error should belong to the dynstr module")
	}
}

func TestConfigKeyNotFound(t *testing.T) {
	err := ConfigKeyNotFound("log.level")

	if !dserror.HasCode(err, dserror.Code(CodeConfigKeyNotFound)) {
		t.Errorf("Code() = %v; want %s", err.Code(), CodeConfigKeyNotFound)
	}
	if err.Severity() != dserror.SeverityLow {
		t.Errorf("Severity() = %v; want low", err.Severity())
	}
}

func TestAnalysisOnForeignError(t *testing.T) {
	plain := stderrors.New("not ours")

	if IsModuleError(plain, ModuleDynstr) {
		t.Error("plain error misattributed to a module")
	}
	if GetErrorModule(plain) != "" || GetErrorOperation(plain) != "" {
		t.Error("plain error should yield empty module and operation")
	}
}

func TestInvalidInputAndOutOfRange(t *testing.T) {
	err := InvalidInput(ModuleConfig, "load", "", "non-empty file path")
	if !dserror.HasCode(err, dserror.Code(CodeInvalidInput)) {
		t.Errorf("InvalidInput code = %v; want %s", err.Code(), CodeInvalidInput)
	}

	rng := OutOfRange(ModuleDynstr, "insert", 7, 0, 3)
	if !dserror.HasCode(rng, dserror.Code(CodeOutOfRange)) {
		t.Errorf("OutOfRange code = %v; want %s", rng.Code(), CodeOutOfRange)
	}
	if v, ok := rng.Detail("max"); !ok || v != 3 {
		t.Errorf("Detail(max) = %v, %v; want 3, true", v, ok)
	}
}
