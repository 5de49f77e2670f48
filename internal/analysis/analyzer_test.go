package analysis

import (
	"reflect"
	"testing"
)

const sampleCV = `Jean Dupont
Consultant senior

Contact
jean.dupont@example.com
06 12 34 56 78

Résumé
Consultant avec dix ans d'expérience en transformation digitale.
Spécialisé dans les architectures distribuées.

Expérience
Architecte logiciel - BanqueCorp (2021 - 2023)
Refonte du système de paiement.
Migration vers le cloud.
2019 - 2021 : Développeur backend chez Assurantis
Maintenance des services de souscription.

Compétences
Go, Python, PostgreSQL
- Kubernetes
- Terraform; Ansible
`

func TestAnalyzeContentSample(t *testing.T) {
	r := AnalyzeContent(sampleCV, "Jean Dupont")

	if r.Contact.Email != "jean.dupont@example.com" {
		t.Fatalf("email: got %q", r.Contact.Email)
	}
	if r.Contact.Phone == "" {
		t.Fatalf("expected a phone number")
	}

	if r.Summary == "" {
		t.Fatalf("expected a summary")
	}
	if want := "Consultant avec dix ans d'expérience en transformation digitale. Spécialisé dans les architectures distribuées."; r.Summary != want {
		t.Fatalf("summary: got %q, want %q", r.Summary, want)
	}

	if len(r.Missions) != 2 {
		t.Fatalf("expected 2 missions, got %d: %+v", len(r.Missions), r.Missions)
	}
	first := r.Missions[0]
	if first.Title != "Architecte logiciel" || first.Client != "BanqueCorp" || first.Period != "2021 - 2023" {
		t.Fatalf("first mission: %+v", first)
	}
	if first.Description == "" {
		t.Fatalf("expected first mission description")
	}
	second := r.Missions[1]
	if second.Period != "2019 - 2021" {
		t.Fatalf("second mission period: %q", second.Period)
	}
	if second.Title != "Développeur backend" || second.Client != "Assurantis" {
		t.Fatalf("second mission title/client: %+v", second)
	}

	wantSkills := []string{"Go", "Python", "PostgreSQL", "Kubernetes", "Terraform", "Ansible"}
	if !reflect.DeepEqual(r.Skills, wantSkills) {
		t.Fatalf("skills: got %v, want %v", r.Skills, wantSkills)
	}
}

func TestAnalyzeContentEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   \n\t ", "aucune structure reconnaissable"} {
		r := AnalyzeContent(text, "Jean Dupont")
		if !r.IsEmpty() {
			t.Fatalf("expected empty result for %q, got %+v", text, r)
		}
	}
}

func TestAnalyzeContentDeterministic(t *testing.T) {
	a := AnalyzeContent(sampleCV, "Jean Dupont")
	b := AnalyzeContent(sampleCV, "Jean Dupont")
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical results on identical input")
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	cases := []Result{
		{},
		AnalyzeContent(sampleCV, "Jean Dupont"),
		{Summary: "ok", Contact: Contact{Email: "a@b.fr"}},
	}
	for _, original := range cases {
		raw, err := Serialize(original)
		if err != nil {
			t.Fatalf("Serialize: %v", err)
		}
		decoded, err := Deserialize(raw)
		if err != nil {
			t.Fatalf("Deserialize: %v", err)
		}
		if !reflect.DeepEqual(decoded, original) {
			t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", decoded, original)
		}
	}
}

func TestSerializeDeterministicBytes(t *testing.T) {
	r := AnalyzeContent(sampleCV, "Jean Dupont")
	first, err := Serialize(r)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	second, err := Serialize(AnalyzeContent(sampleCV, "Jean Dupont"))
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if first != second {
		t.Fatalf("expected byte-identical serialization")
	}
}
