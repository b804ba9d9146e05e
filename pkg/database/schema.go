package database

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL,
		full_name TEXT NOT NULL DEFAULT '',
		business_type TEXT,
		experience_level TEXT,
		primary_goal TEXT,
		onboarding_completed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS seller_leads (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES profiles(id),
		property_address TEXT NOT NULL,
		seller_name TEXT NOT NULL DEFAULT '',
		seller_phone TEXT NOT NULL DEFAULT '',
		seller_email TEXT NOT NULL DEFAULT '',
		asking_price DOUBLE PRECISION CHECK (asking_price >= 0),
		arv DOUBLE PRECISION CHECK (arv >= 0),
		repair_costs DOUBLE PRECISION CHECK (repair_costs >= 0),
		buyer_roi DOUBLE PRECISION,
		status TEXT NOT NULL DEFAULT 'New',
		notes TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_seller_leads_user_id ON seller_leads(user_id)`,
	`CREATE TABLE IF NOT EXISTS buyer_leads (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES profiles(id),
		investor_name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		max_budget DOUBLE PRECISION NOT NULL CHECK (max_budget >= 0),
		min_roi DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (min_roi >= 0),
		preferred_location TEXT NOT NULL DEFAULT 'Any',
		property_type TEXT NOT NULL DEFAULT 'Any',
		status TEXT NOT NULL DEFAULT 'Active',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_buyer_leads_user_id ON buyer_leads(user_id)`,
	`CREATE TABLE IF NOT EXISTS founder_customers (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		company TEXT NOT NULL DEFAULT '',
		investor_type TEXT NOT NULL DEFAULT '',
		experience TEXT NOT NULL DEFAULT '',
		plan TEXT NOT NULL,
		billing_cycle TEXT NOT NULL,
		stripe_customer_id TEXT NOT NULL,
		setup_intent_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending_payment',
		price_id TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_founder_customers_email ON founder_customers(email)`,
	`CREATE INDEX IF NOT EXISTS idx_founder_customers_stripe_customer ON founder_customers(stripe_customer_id)`,
}

// EnsureSchema creates the tables the service reads and writes.
func EnsureSchema(ctx context.Context, db DBTX) error {
	for i, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}
