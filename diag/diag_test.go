// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diag

import (
	"bytes"
	"strings"
	"testing"
)

func TestWarnOnceFiresOnce(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	Reset()

	WarnOnce("slider/min-max", "min exceeds max", map[string]any{"min": 5, "max": 1})
	WarnOnce("slider/min-max", "min exceeds max", nil)
	WarnOnce("slider/min-max", "different wording, same key", nil)

	if got := strings.Count(buf.String(), "min exceeds max"); got != 1 {
		t.Errorf("expected 1 warning, got %d:\n%s", got, buf.String())
	}
}

func TestWarnOnceDistinctKeys(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	Reset()

	WarnOnce("a", "first", nil)
	WarnOnce("b", "second", nil)

	out := buf.String()
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Errorf("expected both warnings, got:\n%s", out)
	}
}
