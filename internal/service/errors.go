package service

import "errors"

// Доменные ошибки. Проверяются через errors.Is на границах компонентов.
var (
	// ErrValidation - некорректный ввод: плохое значение перечисления,
	// неположительная цена, пустой набор брендов
	ErrValidation = errors.New("некорректные данные")

	// ErrAuthorization - актор не аутентифицирован или роль не подходит
	ErrAuthorization = errors.New("доступ запрещен")

	// ErrNotFound - неизвестный id; на границе компонента это пустой
	// результат, а не сбой: id часто приходят из устаревших сообщений
	ErrNotFound = errors.New("не найдено")

	// ErrRequestNotActive - запрос закрыт или истек
	ErrRequestNotActive = errors.New("запрос больше не активен")

	// ErrDuplicateOffer - продавец уже ответил на этот запрос
	ErrDuplicateOffer = errors.New("предложение уже отправлено")
)
