package config

import (
	"os"
	"strings"
)

// Persona — все тексты бота. Логика relay от персоны не зависит:
// поменяли промпт и шаблоны — получили другого бота.
type Persona struct {
	SystemPrompt string

	Welcome        string // шаблон, %s — имя пользователя
	Help           string
	Donate         string
	DonateReminder string
	DonateThanks   string

	FeedbackPrompt string
	FeedbackThanks string

	ResetDone string

	SoftError string
	HardError string

	Donation DonationDetails
}

type DonationDetails struct {
	CardNumber string
	Bank       string
	Cardholder string
	Info       string
}

const defaultSystemPrompt = `Ты — Астробот, профессиональный ассистент в области психологической астрологии и духовного развития.

Твоя база знаний включает труды ведущих мировых астрологов-психологов: Карл Густав Юнг (архетипы и синхронистичность), Дейн Радьяр (трансперсональный подход), Стефан Арройо (астрология и четыре стихии), Лиза Морза (астрология отношений), Говард Саспортас (двенадцать домов гороскопа), Александр Колесов и Михаил Левин (психологическая астрология).

ПРОФЕССИОНАЛЬНЫЕ ПРИНЦИПЫ:
1. Холистический подход: планеты + аспекты + дома + знаки.
2. Акцент на психологическую интерпретацию, а не фатализм.
3. Сочетай эзотерические знания с научным подходом.
4. Делай упор на личностный рост и самоосознание.

Твои ответы должны быть профессиональными, но доступными, этичными и поддерживающими, структурированными: анализ → вывод → рекомендация.

ВАЖНО: не давай медицинских или финансовых советов. Не предсказывай будущее категорично. Делай акцент на понимании, выборе и личной ответственности.

Отвечай на русском языке, используй профессиональную терминологию, но с пояснениями.`

const defaultWelcome = `🌟 *Добро пожаловать, %s!*

Я — *Астробот*, ваш ассистент в области психологической астрологии.

🛠 *Чем я могу помочь:*
• Анализ натальной карты — ваш психологический портрет и потенциал
• Интерпретация транзитов — как текущие планетарные энергии влияют на жизнь
• Синастрический анализ — психология отношений
• Работа с архетипами по Юнгу через астрологические символы

📚 *Примеры вопросов:*
• «Какой архетип наиболее выражен в моей карте?»
• «Как транзит Сатурна через 7 дом влияет на отношения?»
• «Как проработать аспект Марс-Плутон?»

📋 *Команды:*
/start — это сообщение
/help — методика работы
/donate — поддержать проект
/reset — начать новый диалог
/feedback — оставить отзыв

Просто напишите ваш вопрос, и я дам детализированный ответ!`

const defaultHelp = `*📚 Как использовать Астробота:*

1. *Задавайте вопросы* — просто напишите сообщение об астрологии, натальных картах, транзитах или духовном развитии.

2. *Контекст диалога* — я помню последние несколько сообщений нашей беседы.

3. *Сброс диалога* — команда /reset начинает разговор заново.

4. *Точность ответов* — мои ответы основаны на астрологических знаниях, но это общие рекомендации.

Для поддержки проекта используйте /donate 💫`

const defaultDonate = `*💖 Поддержать проект Астробот*

Ваша поддержка помогает развивать проект и улучшать качество ответов.

*Реквизиты для перевода:*

*💳 Номер карты:* ` + "`%s`" + `
*🏦 Банк:* %s
*👤 Получатель:* %s

%s

*Любая сумма важна!* Спасибо за вашу поддержку и веру в проект! 🙏`

// loadPersona — дефолтная персона с возможностью переопределить
// ключевые тексты через окружение.
func loadPersona() Persona {
	return Persona{
		SystemPrompt: getEnvMultiline("SYSTEM_PROMPT", defaultSystemPrompt),

		Welcome: defaultWelcome,
		Help:    defaultHelp,
		Donate:  defaultDonate,

		DonateReminder: "🪄 Если ответ оказался полезным — поддержать проект можно командой /donate. Любой перевод — как благодарственная свеча.",
		DonateThanks: "🙏 *Спасибо огромное за вашу поддержку!*\n\n" +
			"Ваш вклад помогает развивать Астробота. Пусть звезды благоволят вам! ✨",

		FeedbackPrompt: "*📝 Оставить отзыв*\n\n" +
			"Мы ценим ваше мнение! Напишите отзыв, предложения или замечания одним сообщением. 🌟",
		FeedbackThanks: "✅ *Спасибо за ваш отзыв!*\n\n" +
			"Мы обязательно учтем ваши пожелания. 🌟",

		ResetDone: "♻️ *Диалог сброшен!*\n\n" +
			"Я готов к новому разговору. Задавайте ваш вопрос! 🌟",

		SoftError: "⚠️ Извините, произошла ошибка при обработке запроса.\n\n" +
			"Пожалуйста, попробуйте еще раз через несколько минут. " +
			"Если проблема повторяется, используйте команду /reset и попробуйте снова.",
		HardError: "❌ Произошла непредвиденная ошибка.\n\n" +
			"Пожалуйста, попробуйте позже или используйте команду /reset для начала нового диалога.",

		Donation: DonationDetails{
			CardNumber: getEnvOrDefault("DONATE_CARD_NUMBER", "2204 3101 0000 0000"),
			Bank:       getEnvOrDefault("DONATE_BANK", "Яндекс-банк"),
			Cardholder: getEnvOrDefault("DONATE_CARDHOLDER", "Радаев Юрий"),
			Info:       "Перевод на развитие Астробота. Спасибо за вашу поддержку!",
		},
	}
}

func getEnvMultiline(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
