package store

// schemaDDL creates the corpus tables. The engine only reads them; the
// ingest path (CLI db commands, test fixtures) writes.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS documents (
	id            TEXT PRIMARY KEY,
	type          TEXT NOT NULL,
	title         TEXT NOT NULL DEFAULT '',
	status        TEXT NOT NULL DEFAULT 'in_force',
	date_issued   TEXT NOT NULL DEFAULT '',
	date_in_force TEXT NOT NULL DEFAULT '',
	description   TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS provisions (
	document_id TEXT NOT NULL REFERENCES documents(id),
	ref         TEXT NOT NULL,
	chapter     TEXT NOT NULL DEFAULT '',
	section     TEXT NOT NULL DEFAULT '',
	title       TEXT NOT NULL DEFAULT '',
	text        TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (document_id, ref)
);

CREATE TABLE IF NOT EXISTS provision_versions (
	document_id TEXT NOT NULL,
	ref         TEXT NOT NULL,
	text        TEXT NOT NULL DEFAULT '',
	valid_from  TEXT NOT NULL DEFAULT '',
	valid_to    TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (document_id, ref, valid_from)
);

CREATE INDEX IF NOT EXISTS idx_versions_lookup
	ON provision_versions (document_id, ref, valid_from);

CREATE TABLE IF NOT EXISTS cross_references (
	source_doc       TEXT NOT NULL,
	source_provision TEXT NOT NULL DEFAULT '',
	target_doc       TEXT NOT NULL,
	target_provision TEXT NOT NULL DEFAULT '',
	type             TEXT NOT NULL DEFAULT 'reference',
	PRIMARY KEY (source_doc, source_provision, target_doc, target_provision, type)
);

CREATE INDEX IF NOT EXISTS idx_crossrefs_target
	ON cross_references (target_doc, target_provision, type);

CREATE VIRTUAL TABLE IF NOT EXISTS provision_fts USING fts5(
	document_id UNINDEXED,
	ref UNINDEXED,
	text
);
`
