package output

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureOutput points the package at a buffer while f runs
func captureOutput(f func()) string {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	f()

	return buf.String()
}

func TestSuccess(t *testing.T) {
	output := captureOutput(func() {
		Success("Complete.")
	})

	if output != "Complete.\n" {
		t.Errorf("Success plain output = %q, want %q", output, "Complete.\n")
	}
}

func TestError(t *testing.T) {
	output := captureOutput(func() {
		Error("The file, app.sh, already exists.")
		Detail("Please check and try again.")
	})

	want := "Error: The file, app.sh, already exists.\n" +
		"       Please check and try again.\n"
	if output != want {
		t.Errorf("Error output = %q, want %q", output, want)
	}
}

func TestInfo(t *testing.T) {
	output := captureOutput(func() {
		Info("Generating app.sh...")
	})

	if output != "Generating app.sh...\n" {
		t.Errorf("Info plain output = %q", output)
	}
}

func TestStep(t *testing.T) {
	output := captureOutput(func() {
		Step("Step message")
	})

	if !strings.HasPrefix(output, "   ") {
		t.Error("Step output should contain indentation")
	}
	if !strings.Contains(output, "Step message") {
		t.Error("Step output should contain the message")
	}
}

func TestVerbose(t *testing.T) {
	output := captureOutput(func() {
		Verbose("Debug message")
	})

	if output != "" {
		t.Error("Verbose output should be empty when verbose mode is off")
	}

	SetVerbose(true)
	defer SetVerbose(false)

	output = captureOutput(func() {
		Verbose("Debug message")
	})

	if !strings.Contains(output, "Debug message") {
		t.Error("Verbose output should contain the message when enabled")
	}
}

func TestSetVerbose(t *testing.T) {
	SetVerbose(true)
	if !IsVerbose() {
		t.Error("SetVerbose(true) should enable verbose mode")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("SetVerbose(false) should disable verbose mode")
	}
}

func TestBlock(t *testing.T) {
	body := "line one\nline two\n"
	output := captureOutput(func() {
		Block("app.sh", body)
	})

	want := "---- app.sh ----\nline one\nline two\n\n"
	if output != want {
		t.Errorf("Block output = %q, want %q", output, want)
	}
}

func TestStyledOutputAddsEmoji(t *testing.T) {
	output := captureOutput(func() {
		styled = true
		defer func() { styled = false }()

		Success("Done")
		Error("Broken")
	})

	if !strings.Contains(output, "🔥") {
		t.Error("styled Success output should contain fire emoji")
	}
	if !strings.Contains(output, "❌") {
		t.Error("styled Error output should contain X emoji")
	}
	if !strings.Contains(output, "Error: Broken") {
		t.Error("styled Error output should keep the Error: prefix")
	}
}

func TestSetOutputNilFallsBackToStdout(t *testing.T) {
	SetOutput(nil)
	if out != os.Stdout {
		t.Error("SetOutput(nil) should restore stdout")
	}
}
