package store

import "context"

// schema is applied at boot so a fresh database is usable without a
// separate migration step.
const schema = `
CREATE TABLE IF NOT EXISTS competitions (
	id          UUID PRIMARY KEY,
	name        TEXT NOT NULL,
	url         TEXT NOT NULL UNIQUE,
	about       TEXT NOT NULL DEFAULT '',
	category    TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL DEFAULT 'REGISTRATION_OPEN',
	deadline    TIMESTAMPTZ NOT NULL,
	start_date  TIMESTAMPTZ NOT NULL,
	end_date    TIMESTAMPTZ NOT NULL,
	location    TEXT NOT NULL DEFAULT '',
	team_size   INT NOT NULL DEFAULT 0,
	prize_pool  BIGINT NOT NULL DEFAULT 0,
	priority    TEXT NOT NULL DEFAULT 'MEDIUM',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS students (
	id          UUID PRIMARY KEY,
	name        TEXT NOT NULL,
	email       TEXT NOT NULL UNIQUE,
	register_no TEXT NOT NULL UNIQUE,
	department  TEXT NOT NULL DEFAULT '',
	year        TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS teachers (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL UNIQUE,
	department TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS teams (
	id               UUID PRIMARY KEY,
	competition_id   UUID NOT NULL REFERENCES competitions(id),
	name             TEXT NOT NULL,
	motive           TEXT NOT NULL DEFAULT '',
	experience_level TEXT NOT NULL DEFAULT '',
	certificate_url  TEXT NOT NULL DEFAULT '',
	status           TEXT NOT NULL DEFAULT 'REGISTERED',
	activity         TEXT NOT NULL DEFAULT 'ONLINE',
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS team_members (
	id         UUID PRIMARY KEY,
	team_id    UUID NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
	student_id UUID NOT NULL REFERENCES students(id),
	role       TEXT NOT NULL DEFAULT 'DEVELOPER',
	position   INT NOT NULL DEFAULT 0,
	UNIQUE (team_id, student_id)
);

CREATE TABLE IF NOT EXISTS activity_log (
	id         BIGSERIAL PRIMARY KEY,
	kind       TEXT NOT NULL,
	team_id    UUID,
	team_name  TEXT NOT NULL DEFAULT '',
	detail     TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_teams_competition ON teams(competition_id);
CREATE INDEX IF NOT EXISTS idx_team_members_student ON team_members(student_id);
CREATE INDEX IF NOT EXISTS idx_activity_log_created ON activity_log(created_at DESC);
`

// EnsureSchema creates missing tables and indexes.
func (d *DB) EnsureSchema(ctx context.Context) error {
	_, err := d.Client.ExecContext(ctx, schema)
	return err
}
