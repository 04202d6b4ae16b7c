package bot

// registerCommands creates the slash command of every registered game
func (b *Bot) registerCommands() error {
	if b.config.IsDevelopment() {
		if err := b.cleanupCommands(); err != nil {
			return err
		}
	}

	for _, cmd := range b.registry.Commands() {
		created, err := b.session.ApplicationCommandCreate(b.config.AppID, b.config.GuildID, cmd)
		if err != nil {
			return err
		}
		b.logger.Info("Registered command /%s", created.Name)
		b.commands = append(b.commands, created)
	}

	return nil
}

// cleanupCommands deletes every command the application has in the guild
func (b *Bot) cleanupCommands() error {
	existing, err := b.session.ApplicationCommands(b.config.AppID, b.config.GuildID)
	if err != nil {
		return err
	}

	for _, cmd := range existing {
		if err := b.session.ApplicationCommandDelete(b.config.AppID, b.config.GuildID, cmd.ID); err != nil {
			return err
		}
		b.logger.Debug("Deleted command /%s", cmd.Name)
	}

	b.commands = b.commands[:0]
	return nil
}
