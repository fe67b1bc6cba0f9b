// FilePath: internal/models/api.models.input.go
package models

import "strings"

// Input shapes accept the field-name aliases the frontends historically
// sent, and normalize them into one canonical model before validation.
//
// Accepted aliases:
//
//	hive:   identificador | identifier | nome, especie | species, apiario | apiary
//	record: colmeia | hive, tipo | kind, valor | value, origem | origin

type HiveInput struct {
	Identifier      string `json:"identificador"`
	IdentifierAlias string `json:"identifier"`
	NameAlias       string `json:"nome"`
	Species         string `json:"especie"`
	SpeciesAlias    string `json:"species"`
	ApiaryID        string `json:"apiario"`
	ApiaryIDAlias   string `json:"apiary"`
	State           string `json:"estado"`
}

// Normalize resolves aliases and defaults into a canonical Hive.
func (in *HiveInput) Normalize() *Hive {
	h := &Hive{
		Identifier: firstNonEmpty(in.Identifier, in.IdentifierAlias, in.NameAlias),
		Species:    firstNonEmpty(in.Species, in.SpeciesAlias),
		ApiaryID:   firstNonEmpty(in.ApiaryID, in.ApiaryIDAlias),
		State:      HiveState(strings.TrimSpace(in.State)),
	}
	if h.Species == "" {
		h.Species = DefaultHiveSpecies
	}
	if h.State == "" {
		h.State = HiveStateHealthy
	}
	return h
}

// NormalizePartial resolves aliases without injecting defaults; fields the
// caller did not send stay zero so partial updates leave them untouched.
func (in *HiveInput) NormalizePartial() *Hive {
	return &Hive{
		Identifier: firstNonEmpty(in.Identifier, in.IdentifierAlias, in.NameAlias),
		Species:    firstNonEmpty(in.Species, in.SpeciesAlias),
		ApiaryID:   firstNonEmpty(in.ApiaryID, in.ApiaryIDAlias),
		State:      HiveState(strings.TrimSpace(in.State)),
	}
}

type RecordInput struct {
	HiveID      string   `json:"colmeia"`
	HiveIDAlias string   `json:"hive"`
	Kind        string   `json:"tipo"`
	KindAlias   string   `json:"kind"`
	Value       *float64 `json:"valor"`
	ValueAlias  *float64 `json:"value"`
	Origin      string   `json:"origem"`
	OriginAlias string   `json:"origin"`
	Metadata    JSON     `json:"metadata"`
}

// Normalize resolves aliases and defaults into a canonical Record.
// A record submitted without a numeric value gets 0.
func (in *RecordInput) Normalize() *Record {
	r := &Record{
		HiveID:   firstNonEmpty(in.HiveID, in.HiveIDAlias),
		Kind:     RecordKind(firstNonEmpty(in.Kind, in.KindAlias)),
		Origin:   firstNonEmpty(in.Origin, in.OriginAlias),
		Metadata: in.Metadata,
	}
	switch {
	case in.Value != nil:
		r.Value = *in.Value
	case in.ValueAlias != nil:
		r.Value = *in.ValueAlias
	}
	if r.Origin == "" {
		r.Origin = OriginManual
	}
	if r.Metadata == nil {
		r.Metadata = JSON{}
	}
	return r
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
