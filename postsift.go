// Package postsift extracts structured post records from saved web-page
// archives (MHTML) of professional feed content. Extraction runs cascading
// CSS selector strategies per field across heterogeneous, versioned markup,
// scores the result set for completeness, and can optionally augment the
// records with Company and Location columns via a text-generation
// collaborator.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, mime/).
package postsift
