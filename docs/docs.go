// Package docs описание REST API в формате swagger 2.0.
// Регенерируется по аннотациям: swag init -g internal/handlers/rest.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/cases": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "cases"
                ],
                "summary": "Список случаев",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.CasesResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/cases/{case_id}/card": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "cases"
                ],
                "summary": "Карточка пациента",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID случая",
                        "name": "case_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.PatientCard"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/cases/{case_id}/charts/scatter.png": {
            "get": {
                "produces": [
                    "image/png"
                ],
                "tags": [
                    "cases"
                ],
                "summary": "PNG диаграмма рассеяния пары параметров",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID случая",
                        "name": "case_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Параметр X",
                        "name": "x",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Параметр Y",
                        "name": "y",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/cases/{case_id}/charts/window.png": {
            "get": {
                "produces": [
                    "image/png"
                ],
                "tags": [
                    "cases"
                ],
                "summary": "PNG график витальных показателей окна",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID случая",
                        "name": "case_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "number",
                        "description": "Начало окна",
                        "name": "start",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/cases/{case_id}/discharge": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "cases"
                ],
                "summary": "Выписной эпикриз случая",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID случая",
                        "name": "case_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.DischargeSummary"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/cases/{case_id}/frame": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "cases"
                ],
                "summary": "Кадр просмотрщика для начала окна",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID случая",
                        "name": "case_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "number",
                        "description": "Начало окна, прижимается к длительности",
                        "name": "start",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Frame"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/cases/{case_id}/scatter": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "cases"
                ],
                "summary": "Точки пары параметров случая и коэффициент Пирсона",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID случая",
                        "name": "case_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Параметр X",
                        "name": "x",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Параметр Y",
                        "name": "y",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.ScatterResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/cases/{case_id}/stats": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "cases"
                ],
                "summary": "Статистика рядов случая в окне",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID случая",
                        "name": "case_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "number",
                        "description": "Начало окна",
                        "name": "start",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.WindowStatsResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/cases/{case_id}/xcorr": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "cases"
                ],
                "summary": "Кросс-корреляция пары параметров с поиском лага",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID случая",
                        "name": "case_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Параметр X",
                        "name": "x",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Параметр Y",
                        "name": "y",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Максимальный лаг в отсчетах",
                        "name": "max_lag",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.XCorrResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/cohort": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "analytics"
                ],
                "summary": "Точки когортной диаграммы с фильтрами",
                "parameters": [
                    {
                        "description": "Фильтры",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CohortRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.CohortResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/correlation": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "analytics"
                ],
                "summary": "Глобальная матрица корреляций",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.CorrelationMatrix"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/monitoring/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "monitoring"
                ],
                "summary": "Проверка состояния сервиса",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.HealthResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handlers.HealthResponse"
                        }
                    }
                }
            }
        },
        "/params": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "analytics"
                ],
                "summary": "Отсортированные ключи параметров всех случаев",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.ParamsResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/sessions": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sessions"
                ],
                "summary": "Создание сессии просмотра",
                "parameters": [
                    {
                        "description": "Случай",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.CreateSessionRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/handlers.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/handlers.ViewerState"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/sessions/{session_id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sessions"
                ],
                "summary": "Состояние сессии просмотра",
                "parameters": [
                    {
                        "type": "string",
                        "description": "UUID сессии",
                        "name": "session_id",
                        "in": "path",
                        "required": true,
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.ViewerState"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sessions"
                ],
                "summary": "Удаление сессии просмотра",
                "parameters": [
                    {
                        "type": "string",
                        "description": "UUID сессии",
                        "name": "session_id",
                        "in": "path",
                        "required": true,
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/sessions/{session_id}/case": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sessions"
                ],
                "summary": "Выбор другого случая в сессии",
                "parameters": [
                    {
                        "type": "string",
                        "description": "UUID сессии",
                        "name": "session_id",
                        "in": "path",
                        "required": true,
                        "format": "uuid"
                    },
                    {
                        "description": "Случай",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.SelectCaseRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Frame"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/sessions/{session_id}/pause": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sessions"
                ],
                "summary": "Пауза воспроизведения",
                "parameters": [
                    {
                        "type": "string",
                        "description": "UUID сессии",
                        "name": "session_id",
                        "in": "path",
                        "required": true,
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.ViewerState"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/sessions/{session_id}/play": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sessions"
                ],
                "summary": "Запуск воспроизведения",
                "parameters": [
                    {
                        "type": "string",
                        "description": "UUID сессии",
                        "name": "session_id",
                        "in": "path",
                        "required": true,
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.ViewerState"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/sessions/{session_id}/seek": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sessions"
                ],
                "summary": "Перемещение ползунка",
                "parameters": [
                    {
                        "type": "string",
                        "description": "UUID сессии",
                        "name": "session_id",
                        "in": "path",
                        "required": true,
                        "format": "uuid"
                    },
                    {
                        "description": "Начало окна",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.SeekRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Frame"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/sessions/{session_id}/ws": {
            "get": {
                "tags": [
                    "sessions"
                ],
                "summary": "Поток кадров сессии по websocket",
                "parameters": [
                    {
                        "type": "string",
                        "description": "UUID сессии",
                        "name": "session_id",
                        "in": "path",
                        "required": true,
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "101": {
                        "description": "Switching Protocols"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "tags": [
        {
            "description": "Данные одного случая",
            "name": "cases"
        },
        {
            "description": "Матрица корреляций и когорта",
            "name": "analytics"
        },
        {
            "description": "Сессии просмотра и воспроизведение",
            "name": "sessions"
        },
        {
            "description": "Мониторинг состояния сервиса",
            "name": "monitoring"
        }
    ],
    "definitions": {
        "handlers.CasesResponse": {
            "type": "object",
            "properties": {
                "cases": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "count": {
                    "type": "integer",
                    "example": 12
                }
            }
        },
        "handlers.CreateSessionRequest": {
            "type": "object",
            "required": [
                "case_id"
            ],
            "properties": {
                "case_id": {
                    "type": "string",
                    "example": "4481"
                }
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "active_sessions": {
                    "type": "integer",
                    "example": 1
                },
                "database": {
                    "type": "string",
                    "example": "ok"
                },
                "dataset_loaded": {
                    "type": "boolean"
                },
                "loaded_at": {
                    "type": "string"
                },
                "service": {
                    "type": "string",
                    "example": "InsideOR Explorer"
                },
                "status": {
                    "type": "string",
                    "example": "healthy"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "handlers.ParamsResponse": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer",
                    "example": 9
                },
                "params": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "handlers.SeekRequest": {
            "type": "object",
            "required": [
                "start"
            ],
            "properties": {
                "start": {
                    "type": "number",
                    "example": 1200
                }
            }
        },
        "handlers.SelectCaseRequest": {
            "type": "object",
            "required": [
                "case_id"
            ],
            "properties": {
                "case_id": {
                    "type": "string",
                    "example": "4481"
                }
            }
        },
        "handlers.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {
                    "type": "string",
                    "example": "Операция выполнена успешно"
                }
            }
        },
        "handlers.ViewerState": {
            "type": "object",
            "properties": {
                "case_id": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "duration": {
                    "type": "number"
                },
                "playing": {
                    "type": "boolean"
                },
                "session_id": {
                    "type": "string"
                },
                "step": {
                    "type": "number"
                },
                "updated_at": {
                    "type": "string"
                },
                "window": {
                    "$ref": "#/definitions/models.Window"
                }
            }
        },
        "models.CohortPoint": {
            "type": "object",
            "properties": {
                "caseid": {
                    "type": "string"
                },
                "x": {
                    "type": "number"
                },
                "y": {
                    "type": "number"
                }
            }
        },
        "models.CohortRequest": {
            "type": "object",
            "required": [
                "x",
                "y"
            ],
            "properties": {
                "emergency_only": {
                    "type": "boolean"
                },
                "optype": {
                    "type": "string",
                    "example": "All"
                },
                "show_female": {
                    "type": "boolean"
                },
                "show_male": {
                    "type": "boolean"
                },
                "x": {
                    "type": "string",
                    "example": "age"
                },
                "y": {
                    "type": "string",
                    "example": "surgery_time"
                }
            }
        },
        "models.CohortResponse": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                },
                "mean_y": {
                    "type": "number"
                },
                "points": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.CohortPoint"
                    }
                },
                "summary": {
                    "type": "string"
                },
                "x": {
                    "type": "string"
                },
                "y": {
                    "type": "string"
                }
            }
        },
        "models.CorrelationMatrix": {
            "type": "object",
            "properties": {
                "keys": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "pairs": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "number"
                    }
                },
                "values": {
                    "type": "array",
                    "items": {
                        "type": "array",
                        "items": {
                            "type": "number"
                        }
                    }
                }
            }
        },
        "models.DischargeSummary": {
            "type": "object",
            "properties": {
                "admission_days": {
                    "type": "number"
                },
                "case_id": {
                    "type": "string"
                },
                "deceased": {
                    "type": "boolean"
                },
                "discharge_days": {
                    "type": "number"
                },
                "icu_stay_days": {
                    "type": "number"
                },
                "outcome": {
                    "type": "string"
                },
                "postop_stay_days": {
                    "type": "number"
                }
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {
                    "type": "string",
                    "example": "case 4481 is not loaded"
                },
                "error": {
                    "type": "string",
                    "example": "case not found"
                }
            }
        },
        "models.Frame": {
            "type": "object",
            "properties": {
                "case_id": {
                    "type": "string"
                },
                "duration": {
                    "type": "number"
                },
                "interventions": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "array",
                        "items": {
                            "$ref": "#/definitions/models.TimePoint"
                        }
                    }
                },
                "live_interventions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.LiveValue"
                    }
                },
                "live_vitals": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.LiveValue"
                    }
                },
                "time_label": {
                    "type": "string",
                    "example": "00:10:00"
                },
                "vital_range": {
                    "type": "array",
                    "items": {
                        "type": "number"
                    }
                },
                "vitals": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "array",
                        "items": {
                            "$ref": "#/definitions/models.TimePoint"
                        }
                    }
                },
                "window": {
                    "$ref": "#/definitions/models.Window"
                }
            }
        },
        "models.LiveValue": {
            "type": "object",
            "properties": {
                "param": {
                    "type": "string"
                },
                "value": {
                    "type": "number"
                }
            }
        },
        "models.PairedPoint": {
            "type": "object",
            "properties": {
                "t": {
                    "type": "number"
                },
                "x": {
                    "type": "number"
                },
                "y": {
                    "type": "number"
                }
            }
        },
        "models.PatientCard": {
            "type": "object",
            "properties": {
                "adm": {
                    "type": "number"
                },
                "age": {
                    "type": "number"
                },
                "approach": {
                    "type": "string"
                },
                "asa": {
                    "type": "number"
                },
                "bmi": {
                    "type": "number"
                },
                "caseid": {
                    "type": "string"
                },
                "death_inhosp": {
                    "type": "number"
                },
                "department": {
                    "type": "string"
                },
                "dis": {
                    "type": "number"
                },
                "dx": {
                    "type": "string"
                },
                "emop": {
                    "type": "number"
                },
                "height": {
                    "type": "number"
                },
                "icu_days": {
                    "type": "number"
                },
                "los_postop": {
                    "type": "number"
                },
                "opname": {
                    "type": "string"
                },
                "optype": {
                    "type": "string"
                },
                "position": {
                    "type": "string"
                },
                "sex": {
                    "type": "string"
                }
            }
        },
        "models.ScatterResponse": {
            "type": "object",
            "properties": {
                "case_id": {
                    "type": "string"
                },
                "param_x": {
                    "type": "string"
                },
                "param_y": {
                    "type": "string"
                },
                "pearson": {
                    "type": "number"
                },
                "points": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.PairedPoint"
                    }
                }
            }
        },
        "models.SeriesStats": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                },
                "iqr": {
                    "type": "number"
                },
                "max": {
                    "type": "number"
                },
                "mean": {
                    "type": "number"
                },
                "min": {
                    "type": "number"
                },
                "param": {
                    "type": "string"
                },
                "rmssd": {
                    "type": "number"
                },
                "std": {
                    "type": "number"
                }
            }
        },
        "models.TimePoint": {
            "type": "object",
            "properties": {
                "time": {
                    "type": "number"
                },
                "value": {
                    "type": "number"
                }
            }
        },
        "models.Window": {
            "type": "object",
            "properties": {
                "end": {
                    "type": "number"
                },
                "start": {
                    "type": "number"
                }
            }
        },
        "models.WindowStatsResponse": {
            "type": "object",
            "properties": {
                "case_id": {
                    "type": "string"
                },
                "interventions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.SeriesStats"
                    }
                },
                "vitals": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.SeriesStats"
                    }
                },
                "window": {
                    "$ref": "#/definitions/models.Window"
                }
            }
        },
        "models.XCorrResponse": {
            "type": "object",
            "properties": {
                "case_id": {
                    "type": "string"
                },
                "lag": {
                    "type": "integer"
                },
                "maxabs": {
                    "type": "number"
                },
                "pairs": {
                    "type": "integer"
                },
                "param_x": {
                    "type": "string"
                },
                "param_y": {
                    "type": "string"
                },
                "valid": {
                    "type": "boolean"
                }
            }
        }
    }
}`

// SwaggerInfo экспортируемые сведения о спецификации, клиенты могут их менять
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "InsideOR Case Explorer API",
	Description:      "API интраоперационного просмотрщика: окна рядов, корреляции, когорта",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
