// Package salience ranks the content of marketing documents. It extracts
// salient keywords from free text with a multilingual TextRank engine and
// orders the text's sections by estimated marketing impact.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, etree/, whatlang/).
package salience
