// Package repository реализует типизированные репозитории пользователей,
// обменов и уведомлений поверх key-value хранилища.
//
// Каждая коллекция хранится под своим ключом как JSON-массив и при любой
// мутации перечитывается и перезаписывается целиком. Частичных записей нет,
// конфликт двух писателей решается в пользу последнего — хранилище рассчитано
// на одного активного писателя.
package repository

import "errors"

// Ошибки уровня хранилища, пробрасываемые сервисам без изменений.
var (
	// ErrNotFound запись с указанным идентификатором отсутствует.
	ErrNotFound = errors.New("record not found")
	// ErrEmailTaken пользователь с такой почтой уже зарегистрирован.
	ErrEmailTaken = errors.New("email already registered")
)
