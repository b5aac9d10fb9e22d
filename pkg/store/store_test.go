package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/juristika/zakon/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "corpus.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestDocumentRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	doc := types.Document{
		ID:          "ZAKO4291",
		Type:        types.DocumentTypeStatute,
		Title:       "Zakon o gospodarskih družbah",
		Status:      types.StatusInForce,
		DateIssued:  "2006-04-04",
		DateInForce: "2006-05-04",
	}
	require.NoError(t, st.PutDocument(ctx, doc))

	got, err := st.DocumentByID(ctx, "ZAKO4291")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, doc, *got)

	// Upsert replaces fields in place.
	doc.Status = types.StatusAmended
	require.NoError(t, st.PutDocument(ctx, doc))
	got, err = st.DocumentByID(ctx, "ZAKO4291")
	require.NoError(t, err)
	require.Equal(t, types.StatusAmended, got.Status)
}

func TestDocumentByIDAbsent(t *testing.T) {
	st := newTestStore(t)

	got, err := st.DocumentByID(context.Background(), "NEZNAN")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestProvisionRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, st.PutDocument(ctx, types.Document{
		ID: "ZAKO4291", Type: types.DocumentTypeStatute, Status: types.StatusInForce,
	}))

	prov := types.Provision{
		DocumentID: "ZAKO4291",
		Ref:        "14",
		Chapter:    "II",
		Title:      "Firma",
		Text:       "Firma je ime, s katerim družba posluje.",
	}
	require.NoError(t, st.PutProvision(ctx, prov))

	got, err := st.ProvisionByRef(ctx, "ZAKO4291", "14")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, prov, *got)

	got, err = st.ProvisionByRef(ctx, "ZAKO4291", "99")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestVersionAtHalfOpenIntervals(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	old := types.ProvisionVersion{
		DocumentID: "ZAKO4291", Ref: "14",
		Text: "staro besedilo", ValidFrom: "2010-01-01", ValidTo: "2015-06-01",
	}
	current := types.ProvisionVersion{
		DocumentID: "ZAKO4291", Ref: "14",
		Text: "novo besedilo", ValidFrom: "2015-06-01",
	}
	require.NoError(t, st.PutVersion(ctx, old))
	require.NoError(t, st.PutVersion(ctx, current))

	got, err := st.VersionAt(ctx, "ZAKO4291", "14", "2014-12-31")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "staro besedilo", got.Text)

	// The boundary date belongs to the newer interval.
	got, err = st.VersionAt(ctx, "ZAKO4291", "14", "2015-06-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "novo besedilo", got.Text)

	got, err = st.VersionAt(ctx, "ZAKO4291", "14", "2005-01-01")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestVersionAtOpenBounds(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	v := types.ProvisionVersion{DocumentID: "USTA1", Ref: "2", Text: "besedilo"}
	require.NoError(t, st.PutVersion(ctx, v))

	got, err := st.VersionAt(ctx, "USTA1", "2", "1900-01-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "besedilo", got.Text)
}

func TestFirstVersionAfter(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.PutVersion(ctx, types.ProvisionVersion{
		DocumentID: "ZAKO4291", Ref: "14", Text: "prva", ValidFrom: "2010-01-01", ValidTo: "2015-06-01",
	}))
	require.NoError(t, st.PutVersion(ctx, types.ProvisionVersion{
		DocumentID: "ZAKO4291", Ref: "14", Text: "druga", ValidFrom: "2015-06-01",
	}))

	got, err := st.FirstVersionAfter(ctx, "ZAKO4291", "14", "2005-01-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "prva", got.Text)

	got, err = st.FirstVersionAfter(ctx, "ZAKO4291", "14", "2020-01-01")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestAmendingReferences(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	edges := []types.CrossReference{
		{SourceDoc: "ZAKO5944", SourceProvision: "3", TargetDoc: "ZAKO4291", TargetProvision: "14", Type: types.CrossRefAmendedBy},
		{SourceDoc: "ZAKO1603", TargetDoc: "ZAKO4291", Type: types.CrossRefAmendedBy},
		{SourceDoc: "ZAKO1603", SourceProvision: "1", TargetDoc: "ZAKO4291", TargetProvision: "14", Type: types.CrossRefReference},
	}
	for _, e := range edges {
		require.NoError(t, st.PutCrossReference(ctx, e))
	}

	got, err := st.AmendingReferences(ctx, "ZAKO4291", "14")
	require.NoError(t, err)
	// The provision-targeted edge and the document-level edge, but not the
	// plain reference.
	require.Len(t, got, 2)
	for _, cr := range got {
		require.Equal(t, types.CrossRefAmendedBy, cr.Type)
	}

	// Duplicate edges are ignored on insert.
	require.NoError(t, st.PutCrossReference(ctx, edges[0]))
	got, err = st.AmendingReferences(ctx, "ZAKO4291", "14")
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestSearchProvisions(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, st.PutDocument(ctx, types.Document{
		ID: "ZAKO4291", Type: types.DocumentTypeStatute, Status: types.StatusInForce,
	}))

	require.NoError(t, st.PutProvision(ctx, types.Provision{
		DocumentID: "ZAKO4291", Ref: "14",
		Text: "Ta člen prenaša Direktivo (EU) 2016/680 v slovenski pravni red.",
	}))
	require.NoError(t, st.PutProvision(ctx, types.Provision{
		DocumentID: "ZAKO4291", Ref: "15",
		Text: "Firma mora vsebovati označbo dejavnosti.",
	}))

	got, err := st.SearchProvisions(ctx, "2016/680", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "14", got[0].Ref)

	got, err = st.SearchProvisions(ctx, "ni takega besedila", 10)
	require.NoError(t, err)
	require.Empty(t, got)

	// Re-indexing after an update drops stale hits.
	require.NoError(t, st.PutProvision(ctx, types.Provision{
		DocumentID: "ZAKO4291", Ref: "14",
		Text: "Besedilo brez sklicevanja.",
	}))
	got, err = st.SearchProvisions(ctx, "2016/680", 10)
	require.NoError(t, err)
	require.Empty(t, got)
}
