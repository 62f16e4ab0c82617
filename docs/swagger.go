// Package docs Namibia Tourism Portal API.
//
// Публичный API туристического портала Намибии: справочник регионов,
// каталог объектов по категориям, маршруты с остановками и картой,
// чат-бот, форма обратной связи и административное управление контентом.
//
//	Schemes: http, https
//	BasePath: /api/v1
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- BearerAuth:
//
//	SecurityDefinitions:
//	BearerAuth:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
