package analysis

import (
	"regexp"
	"strings"
)

// Section headers recognized in French and English CVs. Matching is
// case-insensitive on the whole trimmed line, with trailing punctuation
// ignored.
var (
	summaryHeaders = []string{"résumé", "resume", "profil", "profile", "summary", "à propos"}
	skillsHeaders  = []string{"compétences", "competences", "skills", "technologies", "compétences techniques"}
	missionHeaders = []string{"missions", "expérience", "experience", "expériences", "expériences professionnelles", "expérience professionnelle", "parcours", "work experience"}
	contactHeaders = []string{"contact", "coordonnées", "coordonnees"}
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`(?:\+33\s?|0)[1-9](?:[\s.\-]?\d{2}){4}`)

	// "Title - Client (period)"
	missionLineRe = regexp.MustCompile(`^(.{2,80}?)\s+[-–]\s+(.{2,60}?)\s*\(([^)]{2,40})\)\s*$`)
	// "2019 - 2021 : rest" or "03/2019 - présent rest"
	periodPrefixRe = regexp.MustCompile(`(?i)^((?:\d{2}/)?\d{4}\s*[-–]\s*(?:(?:\d{2}/)?\d{4}|présent|present|aujourd'hui))\s*[:\-–]?\s*(.*)$`)

	skillSplitRe = regexp.MustCompile(`[,;•|]`)
)

type section int

const (
	sectionNone section = iota
	sectionSummary
	sectionSkills
	sectionMissions
	sectionContact
)

// AnalyzeContent produces a structured Result from raw CV text. It is a pure
// function of its inputs, tolerates any text including near-empty input, and
// never fails: unparseable content yields an empty Result.
func AnalyzeContent(text, consultantName string) Result {
	var r Result

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return r
	}

	r.Contact.Email = emailRe.FindString(trimmed)
	r.Contact.Phone = strings.TrimSpace(phoneRe.FindString(trimmed))

	current := sectionNone
	var summaryLines []string
	var mission *Mission

	flushMission := func() {
		if mission == nil {
			return
		}
		mission.Description = strings.TrimSpace(mission.Description)
		r.Missions = append(r.Missions, *mission)
		mission = nil
	}

	for _, rawLine := range strings.Split(trimmed, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			if current == sectionSummary && len(summaryLines) > 0 {
				current = sectionNone
			}
			continue
		}

		if next, ok := headerSection(line); ok {
			if current == sectionMissions {
				flushMission()
			}
			current = next
			continue
		}

		switch current {
		case sectionSummary:
			summaryLines = append(summaryLines, line)
		case sectionSkills:
			r.Skills = appendSkills(r.Skills, line)
		case sectionMissions:
			if m, ok := parseMissionStart(line); ok {
				flushMission()
				mission = &m
				continue
			}
			if mission != nil {
				if mission.Description != "" {
					mission.Description += "\n"
				}
				mission.Description += line
			}
		}
	}
	flushMission()

	r.Summary = strings.TrimSpace(strings.Join(summaryLines, " "))

	// The consultant's own name is a hint, not content: drop it when the
	// heuristics picked it up as a skill.
	if consultantName != "" {
		r.Skills = removeFold(r.Skills, consultantName)
	}
	return r
}

func headerSection(line string) (section, bool) {
	normalized := strings.ToLower(strings.TrimRight(line, " :.-"))
	for _, h := range summaryHeaders {
		if normalized == h {
			return sectionSummary, true
		}
	}
	for _, h := range skillsHeaders {
		if normalized == h {
			return sectionSkills, true
		}
	}
	for _, h := range missionHeaders {
		if normalized == h {
			return sectionMissions, true
		}
	}
	for _, h := range contactHeaders {
		if normalized == h {
			return sectionContact, true
		}
	}
	return sectionNone, false
}

func parseMissionStart(line string) (Mission, bool) {
	if m := missionLineRe.FindStringSubmatch(line); m != nil {
		return Mission{
			Title:  strings.TrimSpace(m[1]),
			Client: strings.TrimSpace(m[2]),
			Period: strings.TrimSpace(m[3]),
		}, true
	}
	if m := periodPrefixRe.FindStringSubmatch(line); m != nil {
		mission := Mission{Period: normalizePeriod(m[1])}
		rest := strings.TrimSpace(m[2])
		if title, client, ok := splitTitleClient(rest); ok {
			mission.Title = title
			mission.Client = client
		} else {
			mission.Title = rest
		}
		return mission, true
	}
	return Mission{}, false
}

func normalizePeriod(raw string) string {
	fields := strings.Fields(raw)
	return strings.Join(fields, " ")
}

func splitTitleClient(rest string) (string, string, bool) {
	for _, sep := range []string{" chez ", " - ", " – ", " @ "} {
		if idx := strings.Index(rest, sep); idx > 0 {
			title := strings.TrimSpace(rest[:idx])
			client := strings.TrimSpace(rest[idx+len(sep):])
			if title != "" && client != "" {
				return title, client, true
			}
		}
	}
	return "", "", false
}

func appendSkills(skills []string, line string) []string {
	line = strings.TrimLeft(line, "-*• \t")
	for _, part := range skillSplitRe.Split(line, -1) {
		skill := strings.TrimSpace(part)
		if skill == "" || len(skill) > 60 {
			continue
		}
		if containsFold(skills, skill) {
			continue
		}
		skills = append(skills, skill)
	}
	return skills
}

func containsFold(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}

func removeFold(list []string, v string) []string {
	out := list[:0]
	for _, item := range list {
		if !strings.EqualFold(item, v) {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
