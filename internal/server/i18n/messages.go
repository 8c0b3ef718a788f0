package i18n

// Ключи сообщений. Используются в api и шаблонах.
const (
	MsgInvalidCredentials = "Invalid login or password"
	MsgPasswordMismatch   = "Passwords do not match"
	MsgDuplicateEmail     = "This user already exists"
	MsgUnknownLeader      = "Team leader does not exist"
	MsgUnknownChief       = "Chief does not exist"
	MsgFieldRequired      = "Field %s is required"
	MsgFieldNumber        = "Field %s must be a number"
	MsgInternalError      = "Internal server error"
	MsgNotFound           = "Page not found"
)

type entry struct {
	key string
	ru  string
}

var entries = []entry{
	{MsgInvalidCredentials, "Неправильный логин или пароль"},
	{MsgPasswordMismatch, "Пароли не совпадают"},
	{MsgDuplicateEmail, "Такой пользователь уже есть"},
	{MsgUnknownLeader, "Несуществующий лидер"},
	{MsgUnknownChief, "Несуществующий лидер"},
	{MsgFieldRequired, "Поле «%s» обязательно"},
	{MsgFieldNumber, "Поле «%s» должно быть числом"},
	{MsgInternalError, "Внутренняя ошибка сервера"},
	{MsgNotFound, "Страница не найдена"},

	// заголовки страниц
	{"Mars One", "Миссия Колонизация Марса"},
	{"Authorization", "Авторизация"},
	{"Registration", "Регистрация"},
	{"Adding a Job", "Добавление работы"},
	{"Edit Job", "Редактирование работы"},
	{"Add a Department", "Добавление департамента"},
	{"Edit Department", "Редактирование департамента"},
	{"Works log", "Журнал работ"},
	{"List of Departments", "Список департаментов"},

	// навигация и кнопки
	{"Log in", "Войти"},
	{"Log out", "Выйти"},
	{"Register", "Зарегистрироваться"},
	{"Submit", "Отправить"},
	{"Jobs", "Работы"},
	{"Departments", "Департаменты"},
	{"Add job", "Добавить работу"},
	{"Add department", "Добавить департамент"},
	{"Edit", "Изменить"},
	{"Delete", "Удалить"},
	{"Back", "Назад"},
	{"No records yet", "Записей пока нет"},

	// колонки таблиц
	{"Action #%d", "Действие № %d"},
	{"Department #%d", "Департамент № %d"},
	{"Title of activity", "Название работы"},
	{"Team leader", "Руководитель"},
	{"Duration", "Продолжительность"},
	{"%d hours", "%d ч."},
	{"List of collaborators", "Участники"},
	{"Is finished", "Завершена"},
	{"Finished", "Завершена"},
	{"Is not finished", "Не завершена"},
	{"Title of department", "Название департамента"},
	{"Chief", "Шеф"},
	{"Members", "Участники"},
	{"Department email", "Почта департамента"},

	// подписи полей
	{"Email", "Почта"},
	{"Password", "Пароль"},
	{"Remember me", "Запомнить меня"},
	{"Login / email", "Логин / почта"},
	{"Repeat password", "Повторите пароль"},
	{"Surname", "Фамилия"},
	{"Name", "Имя"},
	{"Age", "Возраст"},
	{"Position", "Должность"},
	{"Speciality", "Специальность"},
	{"Address", "Адрес"},
	{"Job Title", "Название работы"},
	{"Team Leader ID", "ID руководителя"},
	{"Work Size", "Объём работ (ч.)"},
	{"Collaborators", "Участники"},
	{"Is job finished?", "Работа завершена?"},
	{"Title", "Название"},
	{"Chief ID", "ID шефа"},
}

// labels — поле формы -> ключ подписи.
var labels = map[string]string{
	"email":          "Email",
	"password":       "Password",
	"remember_me":    "Remember me",
	"login":          "Login / email",
	"password_again": "Repeat password",
	"surname":        "Surname",
	"name":           "Name",
	"age":            "Age",
	"position":       "Position",
	"speciality":     "Speciality",
	"address":        "Address",
	"job_title":      "Job Title",
	"team_leader":    "Team Leader ID",
	"work_size":      "Work Size",
	"collaborators":  "Collaborators",
	"is_finished":    "Is job finished?",
	"title":          "Title",
	"chief":          "Chief ID",
	"members":        "Members",
}
