package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

func buildDonateKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Я поддержал проект", "donated"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Скопировать реквизиты", "copy_details"),
		),
	)
}
