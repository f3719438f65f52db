// internal/database/migrations.go
package database

const createTablesSQL = `
CREATE TABLE IF NOT EXISTS patients (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    dob DATE,
    phone TEXT,
    alternate_phone TEXT,
    email TEXT,
    gender TEXT,
    address TEXT,
    medical_history TEXT,
    allergies TEXT,
    current_medications TEXT,
    avatar_url TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS appointments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id INTEGER NOT NULL,
    date DATE NOT NULL,
    time TEXT,
    notes TEXT,
    cost DECIMAL(10,2),
    status TEXT NOT NULL DEFAULT 'Scheduled',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS payments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id INTEGER,
    amount DECIMAL(10,2) NOT NULL,
    description TEXT,
    method TEXT,
    date DATE NOT NULL,
    status TEXT,
    receipt_url TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS expenses (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    type TEXT NOT NULL,
    amount DECIMAL(10,2) NOT NULL,
    notes TEXT,
    date DATE NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS treatment_tables (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id INTEGER NOT NULL,
    title TEXT
);

CREATE TABLE IF NOT EXISTS treatment_table_rows (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    treatment_table_id INTEGER NOT NULL REFERENCES treatment_tables(id) ON DELETE CASCADE,
    notes TEXT,
    cost DECIMAL(10,2),
    status TEXT,
    treatment_date DATE
);

CREATE TABLE IF NOT EXISTS dental_records (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id INTEGER NOT NULL,
    date DATE,
    treatment_name TEXT,
    notes TEXT,
    cost DECIMAL(10,2),
    prescription_url TEXT,
    additional_file_url TEXT,
    prescription_file_name TEXT,
    additional_file_name TEXT
);

CREATE TABLE IF NOT EXISTS procedure_items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    description TEXT NOT NULL,
    price DECIMAL(10,2) NOT NULL
);

CREATE TABLE IF NOT EXISTS clinic_settings (
    id INTEGER PRIMARY KEY,
    name TEXT,
    contact_info TEXT,
    opening_hours TEXT,
    logo_url TEXT
);

CREATE TABLE IF NOT EXISTS doctor_profile (
    id INTEGER PRIMARY KEY,
    name TEXT,
    email TEXT,
    phone TEXT,
    clinic_name TEXT,
    avatar_url TEXT
);

CREATE INDEX IF NOT EXISTS idx_appointments_date ON appointments(date);
CREATE INDEX IF NOT EXISTS idx_appointments_patient ON appointments(patient_id);
CREATE INDEX IF NOT EXISTS idx_payments_date ON payments(date);
CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date);
CREATE INDEX IF NOT EXISTS idx_dental_records_patient ON dental_records(patient_id);
CREATE INDEX IF NOT EXISTS idx_treatment_tables_patient ON treatment_tables(patient_id);
`

const seedSQL = `
INSERT OR IGNORE INTO clinic_settings (id, name, contact_info, opening_hours) VALUES
(1, '', '', '');

INSERT OR IGNORE INTO doctor_profile (id, name, email, phone, clinic_name) VALUES
(1, '', '', '', '');

INSERT INTO procedure_items (description, price)
SELECT description, price FROM (
    SELECT 'Consultation' AS description, 300 AS price
    UNION ALL SELECT 'X-Ray', 500
    UNION ALL SELECT 'Scaling & Polishing', 1200
    UNION ALL SELECT 'Extraction', 1500
    UNION ALL SELECT 'Root Canal Treatment', 4500
    UNION ALL SELECT 'Crown', 6000
    UNION ALL SELECT 'Filling', 800
) WHERE NOT EXISTS (SELECT 1 FROM procedure_items);
`
