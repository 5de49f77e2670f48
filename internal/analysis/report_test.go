package analysis

import (
	"strings"
	"testing"
)

func TestRenderMarkdownEmptyResult(t *testing.T) {
	out := RenderMarkdown(Result{}, "Jean Dupont")

	for _, literal := range []string{"Résumé", "Missions (0)", "Compétences (0)", "Non disponible"} {
		if !strings.Contains(out, literal) {
			t.Fatalf("expected report to contain %q:\n%s", literal, out)
		}
	}
	if strings.Contains(out, "### 1.") {
		t.Fatalf("expected no numbered mission entries:\n%s", out)
	}
}

func TestRenderMarkdownFullResult(t *testing.T) {
	r := Result{
		Summary: "Dix ans d'expérience.",
		Missions: []Mission{
			{Title: "Architecte", Client: "BanqueCorp", Period: "2021 - 2023", Description: "Refonte."},
			{Title: "", Client: "Assurantis"},
		},
		Skills:  []string{"Go", "PostgreSQL"},
		Contact: Contact{Email: "jean@example.com"},
	}

	out := RenderMarkdown(r, "Jean Dupont")

	if !strings.Contains(out, "# Analyse du CV de Jean Dupont") {
		t.Fatalf("missing title:\n%s", out)
	}
	if !strings.Contains(out, "## Missions (2)") {
		t.Fatalf("missing mission count:\n%s", out)
	}
	if !strings.Contains(out, "### 1. Architecte") {
		t.Fatalf("missing first mission heading:\n%s", out)
	}
	if !strings.Contains(out, "### 2. Mission") {
		t.Fatalf("untitled mission should fall back to a generic heading:\n%s", out)
	}
	if !strings.Contains(out, "- Client : BanqueCorp") {
		t.Fatalf("missing client line:\n%s", out)
	}
	if !strings.Contains(out, "- Période : Non disponible") {
		t.Fatalf("absent period should render as Non disponible:\n%s", out)
	}
	if !strings.Contains(out, "- Go\n") {
		t.Fatalf("missing skill bullet:\n%s", out)
	}
	if !strings.Contains(out, "- Email : jean@example.com") {
		t.Fatalf("missing email line:\n%s", out)
	}
	if !strings.Contains(out, "- Téléphone : Non disponible") {
		t.Fatalf("absent phone should render as Non disponible:\n%s", out)
	}
}

func TestRenderMarkdownBlankName(t *testing.T) {
	out := RenderMarkdown(Result{}, "   ")
	if !strings.Contains(out, "# Analyse du CV de Non disponible") {
		t.Fatalf("blank display name should fall back:\n%s", out)
	}
}
