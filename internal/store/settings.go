package store

import (
	"fmt"

	"github.com/sadopc/staffr/internal/model"
)

// Setting keys.
const (
	SettingReminderSubject = "reminder_subject"
	SettingReminderBody    = "reminder_body"
	SettingCompany         = "company"
	SettingCurrency        = "currency"
)

const defaultReminderBody = `Bonjour {collaborator_name},

J'espère que vous allez bien. Comme chaque mois, je vous rappelle qu'il est temps de compléter votre pointage d'activités pour le mois écoulé.

Merci de bien vouloir :
1. Vous connecter à l'application
2. Saisir vos heures par projet/mission
3. Valider votre pointage avant le {deadline}

En cas de questions, n'hésitez pas à me contacter.

Cordialement,
{sender_name}`

func defaultSettings() map[string]string {
	return map[string]string{
		SettingReminderSubject: "Rappel : Pointage mensuel des activités",
		SettingReminderBody:    defaultReminderBody,
		SettingCompany:         "Staffr",
		SettingCurrency:        "EUR",
	}
}

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	s.log.Debug("setting changed", "key", key)
	return nil
}

func (s *Store) GetAllSettings() ([]model.Setting, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []model.Setting
	for rows.Next() {
		var s model.Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

func (s *Store) ReminderTemplate() (model.ReminderTemplate, error) {
	var t model.ReminderTemplate
	var err error
	if t.Subject, err = s.GetSetting(SettingReminderSubject); err != nil {
		return t, err
	}
	if t.Body, err = s.GetSetting(SettingReminderBody); err != nil {
		return t, err
	}
	return t, nil
}

func (s *Store) SetReminderTemplate(t model.ReminderTemplate) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin reminder update: %w", err)
	}
	defer tx.Rollback()

	for key, value := range map[string]string{
		SettingReminderSubject: t.Subject,
		SettingReminderBody:    t.Body,
	} {
		if _, err := tx.Exec(
			`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value,
		); err != nil {
			return fmt.Errorf("set setting %q: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reminder update: %w", err)
	}
	s.log.Debug("reminder template changed")
	return nil
}
