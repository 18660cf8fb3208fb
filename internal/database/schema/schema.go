package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Journal Entries
-- One row per successfully generated quest. Quest and insight fields are
-- denormalized onto the entry; they are written once and never updated.
CREATE TABLE IF NOT EXISTS journal_entries (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL,
    text TEXT NOT NULL,
    emotion VARCHAR(100) NOT NULL,
    class VARCHAR(100) NOT NULL,
    realm VARCHAR(200) NOT NULL,
    realm_description TEXT NOT NULL,
    item VARCHAR(200) NOT NULL,
    item_effect TEXT NOT NULL,
    quest TEXT NOT NULL,
    avatar_transformation TEXT NOT NULL,
    insight_summary TEXT NOT NULL,
    insight_emotional_pattern TEXT NOT NULL,
    insight_growth_advice TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_journal_entries_user_created
    ON journal_entries (user_id, created_at DESC);

-- User Inventory
-- Items earned from quests. Never deleted; the equip flag is the only mutation.
CREATE TABLE IF NOT EXISTS user_inventory (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL,
    journal_entry_id UUID REFERENCES journal_entries(id) ON DELETE SET NULL,
    item_name VARCHAR(200) NOT NULL,
    item_effect TEXT NOT NULL,
    is_equipped BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_user_inventory_user
    ON user_inventory (user_id, created_at DESC);

-- User Stats
-- Level is derived from XP inside the increment statement so the pair can
-- never disagree, no matter how many awards race.
CREATE TABLE IF NOT EXISTS user_stats (
    user_id UUID PRIMARY KEY,
    xp BIGINT NOT NULL DEFAULT 0,
    level INTEGER NOT NULL DEFAULT 1,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
