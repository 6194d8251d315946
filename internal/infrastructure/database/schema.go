package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ldanie38/geniuscrm/pkg/constants"
)

// Execer is satisfied by *sql.DB and *sql.Tx
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// schemaStatements returns the DDL in dependency order. Every statement is
// idempotent so Migrate can run on every start.
func schemaStatements() []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
	username VARCHAR(150) NOT NULL,
	email VARCHAR(254) NOT NULL DEFAULT '',
	password VARCHAR(128) NOT NULL DEFAULT '',
	first_name VARCHAR(150) NOT NULL DEFAULT '',
	last_name VARCHAR(150) NOT NULL DEFAULT '',
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	is_staff BOOLEAN NOT NULL DEFAULT FALSE,
	date_joined DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	last_login DATETIME NULL,
	UNIQUE KEY uq_users_username (username),
	KEY idx_users_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`, constants.TableUser),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(150) NOT NULL,
	start_date DATE NOT NULL,
	end_date DATE NULL,
	budget DECIMAL(12,2) NULL,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`, constants.TableCampaign),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(50) NOT NULL,
	color VARCHAR(7) NOT NULL DEFAULT '%s'
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`, constants.TableTag, constants.DefaultTagColor),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(200) NOT NULL,
	email VARCHAR(254) NOT NULL,
	profile_url VARCHAR(200) NOT NULL DEFAULT '',
	source VARCHAR(100) NOT NULL DEFAULT '',
	status VARCHAR(20) NOT NULL DEFAULT '%s',
	is_archived BOOLEAN NOT NULL DEFAULT FALSE,
	owner_id BIGINT NOT NULL,
	campaign_id BIGINT NULL,
	notes TEXT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uq_leads_email (email),
	KEY idx_leads_status (status),
	CONSTRAINT fk_leads_owner FOREIGN KEY (owner_id) REFERENCES %s (id) ON DELETE CASCADE,
	CONSTRAINT fk_leads_campaign FOREIGN KEY (campaign_id) REFERENCES %s (id) ON DELETE SET NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`, constants.TableLead, constants.DefaultLeadStatus, constants.TableUser, constants.TableCampaign),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	lead_id BIGINT NOT NULL,
	tag_id BIGINT NOT NULL,
	PRIMARY KEY (lead_id, tag_id),
	CONSTRAINT fk_lead_tags_lead FOREIGN KEY (lead_id) REFERENCES %s (id) ON DELETE CASCADE,
	CONSTRAINT fk_lead_tags_tag FOREIGN KEY (tag_id) REFERENCES %s (id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`, constants.TableLeadTag, constants.TableLead, constants.TableTag),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(50) NOT NULL,
	color VARCHAR(7) NOT NULL DEFAULT '%s',
	owner_id BIGINT NOT NULL,
	UNIQUE KEY uq_labels_name (name),
	CONSTRAINT fk_labels_owner FOREIGN KEY (owner_id) REFERENCES %s (id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`, constants.TableLabel, constants.DefaultLabelColor, constants.TableUser),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	label_id BIGINT NULL,
	content TEXT NOT NULL,
	owner_id BIGINT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	CONSTRAINT fk_templates_label FOREIGN KEY (label_id) REFERENCES %s (id) ON DELETE SET NULL,
	CONSTRAINT fk_templates_owner FOREIGN KEY (owner_id) REFERENCES %s (id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`, constants.TableTemplate, constants.TableLabel, constants.TableUser),
	}
}

// Migrate creates any missing tables
func Migrate(ctx context.Context, db Execer) error {
	for i, stmt := range schemaStatements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table %s: %w", constants.AllTables[i], err)
		}
	}
	return nil
}
