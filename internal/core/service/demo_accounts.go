package service

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aiauto/dashboard-api/internal/core/domain"
)

// DemoAccount is a single entry of the static login table. Passwords are
// stored and compared in clear; the table exists for demos and staging only
// and must never hold production credentials.
type DemoAccount struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// DemoTable is an immutable email-keyed lookup of demo accounts, built once
// at startup.
type DemoTable map[string]DemoAccount

// Lookup returns the account registered under email, if any.
func (t DemoTable) Lookup(email string) (DemoAccount, bool) {
	acct, ok := t[email]
	return acct, ok
}

// DefaultDemoTable returns the built-in table with one account per role.
func DefaultDemoTable() DemoTable {
	accounts := []DemoAccount{
		{Name: "Admin", Email: "admin@ai-auto.com", Password: "admin123", Role: domain.RoleAdmin},
		{Name: "Builder", Email: "builder@ai-auto.com", Password: "builder123", Role: domain.RoleBuilder},
		{Name: "Civil Engineer", Email: "engineer@ai-auto.com", Password: "engineer123", Role: domain.RoleCivilEngineer},
		{Name: "Site Manager", Email: "sitemanager@ai-auto.com", Password: "site123", Role: domain.RoleSiteManager},
		{Name: "Client", Email: "client@ai-auto.com", Password: "client123", Role: domain.RoleClient},
	}

	table := make(DemoTable, len(accounts))
	for _, a := range accounts {
		table[a.Email] = a
	}
	return table
}

type demoAccountsFile struct {
	Accounts []struct {
		Name     string `yaml:"name"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Role     string `yaml:"role"`
	} `yaml:"accounts"`
}

// LoadDemoTable reads a demo-account table from a YAML file. Entries without
// an email or password are skipped; roles must be in the known enumeration.
func LoadDemoTable(path string) (DemoTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read demo accounts: %w", err)
	}

	var file demoAccountsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse demo accounts: %w", err)
	}

	table := make(DemoTable, len(file.Accounts))
	for _, a := range file.Accounts {
		if a.Email == "" || a.Password == "" {
			continue
		}
		role, ok := domain.NormalizeRole(a.Role)
		if !ok {
			return nil, fmt.Errorf("demo account %s: unknown role %q", a.Email, a.Role)
		}
		name := a.Name
		if name == "" {
			name = string(role)
		}
		table[a.Email] = DemoAccount{Name: name, Email: a.Email, Password: a.Password, Role: role}
	}
	return table, nil
}
