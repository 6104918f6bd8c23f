package main

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return out.String()
}

func TestEstimateCommand(t *testing.T) {
	out := execute(t, "estimate", "--type", "moderna", "--area", "200", "--pool")
	if !strings.Contains(out, "Inversión estimada: L. 1,600,000") {
		t.Fatalf("unexpected output %q", out)
	}
	if !strings.Contains(out, "Piscina: Sí") {
		t.Fatalf("expected pool line, got %q", out)
	}

	out = execute(t, "estimate")
	if !strings.Contains(out, "Tipo: casa residencial") || !strings.Contains(out, "L. 900,000") {
		t.Fatalf("unexpected default output %q", out)
	}
}

func TestCatalogCommand_FallbackOnly(t *testing.T) {
	out := execute(t, "catalog", "--fallback-only")
	for _, want := range []string{
		"1. Inversiones Acrópolis",
		"2. Sin preferencia de ferretería",
		"1. Banco Atlántida (9.50%)",
		"2. Sin preferencia de banco\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestRenderPdfCommand_RequiresID(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"render-pdf"})
	if err := root.Execute(); err == nil {
		t.Fatalf("expected argument error")
	}
}
