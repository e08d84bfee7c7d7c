package infrastructure

// DDL creates the export tables. It is idempotent.
const DDL = `
create table if not exists export_runs (
	id         text primary key,
	created_at text not null,
	samples    integer not null
);

create table if not exists series (
	id           integer primary key autoincrement,
	canonical_id text not null unique
);

create table if not exists samples (
	id         integer primary key autoincrement,
	run_id     text not null references export_runs(id),
	series_id  integer not null references series(id),
	name       text not null,
	type       text not null,
	time_range text not null,
	value      real not null
);

create index if not exists samples_run_idx on samples(run_id);
`
