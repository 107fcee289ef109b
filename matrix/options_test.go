// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/rpmoore24/Sparse-Matrix/matrix"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// 1) TestDefaultOptions_Documented verifies that NewMatrixOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewMatrixOptions()

	if o.SkipZeroCofactors() != matrix.DefaultSkipZeroCofactors {
		t.Fatalf("skipZeroCofactors default mismatch: got %v, want %v", o.SkipZeroCofactors(), matrix.DefaultSkipZeroCofactors)
	}
	if o.Logger() == nil {
		t.Fatalf("logger default must be a no-op logger, got nil")
	}
	if o.Logger().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("default logger must be silent")
	}
}

// 2) TestNewMatrixOptions_LastWriterWins ensures options apply in order.
func TestNewMatrixOptions_LastWriterWins(t *testing.T) {
	o1 := matrix.NewMatrixOptions(matrix.WithSkipZeroCofactors(false), matrix.WithSkipZeroCofactors(true))
	if !o1.SkipZeroCofactors() {
		t.Fatalf("last-writer-wins failed: skipZeroCofactors=%v, want true", o1.SkipZeroCofactors())
	}
	o2 := matrix.NewMatrixOptions(matrix.WithSkipZeroCofactors(true), matrix.WithSkipZeroCofactors(false))
	if o2.SkipZeroCofactors() {
		t.Fatalf("last-writer-wins failed: skipZeroCofactors=%v, want false", o2.SkipZeroCofactors())
	}
}

// 3) TestWithLogger_PanicsOnNil guards the programmer-error contract.
func TestWithLogger_PanicsOnNil(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("WithLogger(nil) must panic")
		}
	}()
	_ = matrix.WithLogger(nil)
}

// 4) TestWithLogger_RecordsRejections checks that rejected calls and resizes reach the logger.
func TestWithLogger_RecordsRejections(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := mustSparse(t, 2, matrix.WithLogger(zap.New(core)))

	_ = m.AddElement(2, 0, 1)
	_ = m.SetSize(-1)
	_ = m.SetSize(3)
	m.Clear()

	rejected := logs.FilterMessage("index rejected").All()
	if len(rejected) != 1 {
		t.Fatalf("index rejected records: got %d, want 1", len(rejected))
	}
	fields := rejected[0].ContextMap()
	if fields["method"] != "AddElement" || fields["row"] != int64(2) || fields["dimension"] != int64(2) {
		t.Fatalf("unexpected fields: %v", fields)
	}
	if got := logs.FilterMessage("resize rejected").Len(); got != 1 {
		t.Fatalf("resize rejected records: got %d, want 1", got)
	}
	if got := logs.FilterMessage("resize").Len(); got != 1 {
		t.Fatalf("resize records: got %d, want 1", got)
	}
	if got := logs.FilterMessage("clear").Len(); got != 1 {
		t.Fatalf("clear records: got %d, want 1", got)
	}
}

// 5) TestOptions_InheritedByMinorAndClone ensures derived matrices keep the configuration.
func TestOptions_InheritedByMinorAndClone(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := mustSparse(t, 3, matrix.WithLogger(zap.New(core)))

	minor, err := m.Minor(0, 0)
	if err != nil {
		t.Fatalf("Minor: %v", err)
	}
	_, _ = minor.GetElement(9, 9)
	_, _ = m.Clone().GetElement(9, 9)

	if got := logs.FilterMessage("index rejected").Len(); got != 2 {
		t.Fatalf("derived matrices must log through the parent logger: got %d records", got)
	}
}
