package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/pkg/e"
)

// Migrate applies the schema, stored procedures and change-feed triggers.
// Every statement is idempotent so startup can run it unconditionally.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	const op = "postgres.Migrate"
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return e.WrapError(ctx, op, err)
		}
	}
	return nil
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS alerts (
		id uuid PRIMARY KEY,
		user_id uuid,
		anonymous_id text,
		general_location text NOT NULL,
		precise_location text NOT NULL DEFAULT '',
		status text NOT NULL DEFAULT 'active',
		responder_count int NOT NULL DEFAULT 0,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now(),
		CONSTRAINT alerts_origin_xor CHECK ((user_id IS NULL) <> (anonymous_id IS NULL)),
		CONSTRAINT alerts_status_valid CHECK (status IN ('active','responded','resolved','cancelled','false_alarm'))
	)`,

	`CREATE TABLE IF NOT EXISTS responses (
		id uuid PRIMARY KEY,
		alert_id uuid NOT NULL REFERENCES alerts(id),
		responder_id uuid NOT NULL,
		status text NOT NULL DEFAULT 'committed',
		called_ambulance boolean,
		person_okay boolean,
		naloxone_used boolean,
		notes text NOT NULL DEFAULT '',
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now(),
		CONSTRAINT responses_status_valid CHECK (status IN ('committed','en_route','arrived','completed')),
		CONSTRAINT responses_one_per_pair UNIQUE (alert_id, responder_id)
	)`,

	`CREATE TABLE IF NOT EXISTS monitoring_sessions (
		id uuid PRIMARY KEY,
		user_id uuid,
		anonymous_id text,
		status text NOT NULL DEFAULT 'active',
		general_location text NOT NULL,
		precise_location text NOT NULL DEFAULT '',
		check_in_count int NOT NULL DEFAULT 0,
		started_at timestamptz NOT NULL DEFAULT now(),
		ended_at timestamptz,
		CONSTRAINT sessions_origin_xor CHECK ((user_id IS NULL) <> (anonymous_id IS NULL)),
		CONSTRAINT sessions_status_valid CHECK (status IN ('active','completed','emergency'))
	)`,

	// the one-active-session-per-origin invariant lives here, not in Go
	`CREATE UNIQUE INDEX IF NOT EXISTS monitoring_sessions_one_active
		ON monitoring_sessions (COALESCE(user_id::text, anonymous_id))
		WHERE status = 'active'`,

	`CREATE TABLE IF NOT EXISTS responder_profiles (
		user_id uuid PRIMARY KEY,
		is_responder boolean NOT NULL DEFAULT false,
		is_admin boolean NOT NULL DEFAULT false,
		last_seen_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS response_cancellations (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		alert_id uuid NOT NULL,
		responder_id uuid NOT NULL,
		reason text NOT NULL,
		detail text NOT NULL DEFAULT '',
		created_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX IF NOT EXISTS responses_by_alert ON responses (alert_id)`,
	`CREATE INDEX IF NOT EXISTS responses_by_responder ON responses (responder_id)`,
	`CREATE INDEX IF NOT EXISTS alerts_by_status ON alerts (status, created_at)`,

	// change feed: the notification commits or rolls back together with the
	// row change; delivery to listeners stays best-effort
	`CREATE OR REPLACE FUNCTION notify_row_change() RETURNS trigger AS $fn$
	DECLARE
		rec record;
	BEGIN
		IF TG_OP = 'DELETE' THEN rec := OLD; ELSE rec := NEW; END IF;
		PERFORM pg_notify(TG_TABLE_NAME || '_feed', json_build_object(
			'table', TG_TABLE_NAME,
			'op', TG_OP,
			'id', rec.id,
			'at', now()
		)::text);
		RETURN rec;
	END;
	$fn$ LANGUAGE plpgsql`,

	`DROP TRIGGER IF EXISTS alerts_notify ON alerts`,
	`CREATE TRIGGER alerts_notify
		AFTER INSERT OR UPDATE OR DELETE ON alerts
		FOR EACH ROW EXECUTE FUNCTION notify_row_change()`,

	`DROP TRIGGER IF EXISTS responses_notify ON responses`,
	`CREATE TRIGGER responses_notify
		AFTER INSERT OR UPDATE OR DELETE ON responses
		FOR EACH ROW EXECUTE FUNCTION notify_row_change()`,

	`CREATE OR REPLACE FUNCTION create_alert_with_notification(
		p_user uuid, p_anon text, p_general text, p_precise text
	) RETURNS uuid AS $fn$
	DECLARE
		v_id uuid := gen_random_uuid();
	BEGIN
		INSERT INTO alerts (id, user_id, anonymous_id, general_location, precise_location, status)
		VALUES (v_id, p_user, p_anon, p_general, coalesce(p_precise, ''), 'active');
		RETURN v_id;
	END;
	$fn$ LANGUAGE plpgsql`,

	// created=false means a retried or concurrent commit already holds the
	// pair; callers must not bump the responder count again
	`DROP FUNCTION IF EXISTS create_response_safe(uuid, uuid, text)`,
	`CREATE FUNCTION create_response_safe(
		p_alert uuid, p_responder uuid, p_status text
	) RETURNS TABLE(id uuid, created boolean) AS $fn$
	DECLARE
		v_id uuid;
	BEGIN
		INSERT INTO responses (id, alert_id, responder_id, status)
		VALUES (gen_random_uuid(), p_alert, p_responder, coalesce(p_status, 'committed'))
		ON CONFLICT (alert_id, responder_id) DO NOTHING
		RETURNING responses.id INTO v_id;
		IF v_id IS NOT NULL THEN
			RETURN QUERY SELECT v_id, true;
			RETURN;
		END IF;
		RETURN QUERY SELECT r.id, false FROM responses r
		WHERE r.alert_id = p_alert AND r.responder_id = p_responder;
	END;
	$fn$ LANGUAGE plpgsql`,

	// count bump and active->responded transition in a single UPDATE so no
	// reader ever observes count=1 with status still 'active'
	`CREATE OR REPLACE FUNCTION increment_responder_count(p_alert uuid) RETURNS void AS $fn$
	BEGIN
		UPDATE alerts
		SET responder_count = responder_count + 1,
			status = CASE WHEN status = 'active' THEN 'responded' ELSE status END,
			updated_at = now()
		WHERE id = p_alert
		  AND status NOT IN ('resolved','cancelled','false_alarm');
	END;
	$fn$ LANGUAGE plpgsql`,

	`CREATE OR REPLACE FUNCTION decrement_responder_count(p_alert uuid) RETURNS void AS $fn$
	DECLARE
		v_live int;
	BEGIN
		SELECT count(*) INTO v_live FROM responses
		WHERE alert_id = p_alert AND status IN ('committed','en_route','arrived');
		UPDATE alerts
		SET responder_count = GREATEST(v_live, 0),
			status = CASE WHEN v_live = 0 AND status = 'responded' THEN 'active' ELSE status END,
			updated_at = now()
		WHERE id = p_alert;
	END;
	$fn$ LANGUAGE plpgsql`,

	// abandonment policy: losing the last committed responder reverts the
	// alert to 'active' unless the originator already cancelled it
	`CREATE OR REPLACE FUNCTION cancel_response_safe(
		p_alert uuid, p_responder uuid, p_reason text, p_detail text
	) RETURNS boolean AS $fn$
	DECLARE
		v_deleted int;
		v_live int;
	BEGIN
		DELETE FROM responses
		WHERE alert_id = p_alert AND responder_id = p_responder AND status <> 'completed';
		GET DIAGNOSTICS v_deleted = ROW_COUNT;
		IF v_deleted = 0 THEN
			RETURN false;
		END IF;
		INSERT INTO response_cancellations (alert_id, responder_id, reason, detail)
		VALUES (p_alert, p_responder, p_reason, coalesce(p_detail, ''));
		SELECT count(*) INTO v_live FROM responses
		WHERE alert_id = p_alert AND status IN ('committed','en_route','arrived');
		UPDATE alerts
		SET responder_count = v_live,
			status = CASE WHEN v_live = 0 AND status = 'responded' THEN 'active' ELSE status END,
			updated_at = now()
		WHERE id = p_alert;
		RETURN true;
	END;
	$fn$ LANGUAGE plpgsql`,

	`CREATE OR REPLACE FUNCTION end_monitoring_session_safe(p_session uuid, p_status text) RETURNS void AS $fn$
	BEGIN
		UPDATE monitoring_sessions
		SET status = p_status, ended_at = now()
		WHERE id = p_session AND ended_at IS NULL;
	END;
	$fn$ LANGUAGE plpgsql`,

	`CREATE OR REPLACE FUNCTION get_alert_stats() RETURNS jsonb AS $fn$
	DECLARE
		v_active bigint;
		v_committed bigint;
		v_map jsonb;
	BEGIN
		SELECT count(*) INTO v_active FROM responder_profiles
		WHERE is_responder AND last_seen_at >= now() - interval '5 minutes';
		SELECT count(DISTINCT r.responder_id) INTO v_committed
		FROM responses r JOIN alerts a ON a.id = r.alert_id
		WHERE r.status IN ('committed','en_route','arrived')
		  AND a.status IN ('active','responded');
		SELECT coalesce(jsonb_object_agg(t.alert_id::text, t.n), '{}'::jsonb) INTO v_map
		FROM (
			SELECT alert_id, count(*) AS n FROM responses
			WHERE status IN ('committed','en_route','arrived')
			GROUP BY alert_id
		) t;
		RETURN jsonb_build_object(
			'active_responders', v_active,
			'committed_responders', v_committed,
			'alert_commitments', v_map
		);
	END;
	$fn$ LANGUAGE plpgsql`,
}
