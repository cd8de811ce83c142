package sqlinline

// QEnsureLedgerSchema runs without arguments so pgx sends it over the simple
// protocol, which allows several statements.
const QEnsureLedgerSchema = `--sql 76d8d848-9084-4b1f-ae63-ed6164aeb6d1
create table if not exists runs (
  id text primary key,
  model_uuid text not null,
  provider text not null,
  theme text not null default '',
  character text not null default '',
  output_dir text not null default '',
  task_count int not null default 0,
  failed int not null default 0,
  created_at timestamptz not null default now(),
  updated_at timestamptz not null default now()
);
create table if not exists generation_tasks (
  run_id text not null references runs(id) on delete cascade,
  idx int not null,
  style_key text not null,
  task_id text not null,
  prompt text not null default '',
  status text not null,
  error_message text not null default '',
  result_urls jsonb not null default '[]'::jsonb,
  created_at timestamptz not null default now(),
  updated_at timestamptz not null default now(),
  primary key (run_id, idx)
);
create index if not exists generation_tasks_task_id_idx on generation_tasks(task_id);
`

const QInsertRun = `--sql 85f1686d-9b8c-4372-864e-d139cd8a4d51
insert into runs(
  id,
  model_uuid,
  provider,
  theme,
  character,
  task_count,
  created_at,
  updated_at
) values (
  $1::text,
  $2::text,
  $3::text,
  $4::text,
  $5::text,
  $6::int,
  now(),
  now()
)
on conflict (id) do update set
  task_count = excluded.task_count,
  updated_at = now();
`

const QUpsertSubmittedTask = `--sql 423105a3-1265-4c4c-9152-03ce5aac04cc
insert into generation_tasks(
  run_id,
  idx,
  style_key,
  task_id,
  prompt,
  status,
  created_at,
  updated_at
) values (
  $1::text,
  $2::int,
  $3::text,
  $4::text,
  $5::text,
  $6::text,
  now(),
  now()
)
on conflict (run_id, idx) do update set
  task_id = excluded.task_id,
  status = excluded.status,
  updated_at = now();
`

// QResolveTask only touches rows that are not terminal yet.
const QResolveTask = `--sql 2ed915b4-8a32-4e4c-af0b-6860763a64ca
update generation_tasks
set status = $3::text,
    error_message = $4::text,
    result_urls = $5::jsonb,
    updated_at = now()
where run_id = $1::text
  and task_id = $2::text
  and status not in ('completed', 'failed', 'timeout');
`

const QFinishRun = `--sql aff8826d-48e8-4d48-8b95-e618b9270c74
update runs
set output_dir = $2::text,
    failed = $3::int,
    updated_at = now()
where id = $1::text;
`

const QListRuns = `--sql ee3fc7af-a150-49ae-a37d-aee87b4ebc64
select id, model_uuid, provider, theme, character, output_dir, task_count, failed, created_at, updated_at
from runs
order by created_at desc
limit $1::int;
`

const QSelectRunByID = `--sql 6fde6376-47e8-486a-8cda-aaae0e9d0e30
select id, model_uuid, provider, theme, character, output_dir, task_count, failed, created_at, updated_at
from runs
where id = $1::text
limit 1;
`

const QListTasksByRun = `--sql f9694c4c-3985-47cd-80ad-785f32f03746
select run_id, idx, style_key, task_id, prompt, status, error_message, result_urls::text, created_at, updated_at
from generation_tasks
where run_id = $1::text
order by idx asc;
`
