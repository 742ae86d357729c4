// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/cashpilot_engine/main.go -o cmd/docs --overridesFile .swaggo
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
        "/declarations/vat": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Renders the VAT return of a country (FR: CA3, BE: Intervat) for a period",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "declarations"
                ],
                "summary": "Generate a VAT declaration",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Period start (YYYY-MM-DD)",
                        "name": "startDate",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Period end (YYYY-MM-DD), inclusive",
                        "name": "endDate",
                        "in": "query",
                        "required": true
                    },
                    {
                        "enum": [
                            "FR",
                            "BE"
                        ],
                        "type": "string",
                        "description": "ISO country code",
                        "name": "country",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Declaration"
                        }
                    },
                    "400": {
                        "description": "Invalid period or country",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unsupported country",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to generate declaration",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reconciliation": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Matches unlinked incoming bank transactions to open invoices and marks matched invoices paid",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reconciliation"
                ],
                "summary": "Reconcile bank transactions",
                "parameters": [
                    {
                        "description": "Optional confidence threshold (0..1)",
                        "name": "request",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.ReconcileRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ReconcileResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid threshold",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "429": {
                        "description": "Too many requests",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to reconcile",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/statements": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Builds the balance sheet, income statement, VAT breakdown and tax estimate for a period",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "statements"
                ],
                "summary": "Build accounting statements",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Period start (YYYY-MM-DD)",
                        "name": "startDate",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Period end (YYYY-MM-DD), inclusive",
                        "name": "endDate",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.StatementsReport"
                        }
                    },
                    "400": {
                        "description": "Invalid period",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to build statements",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.AccountLine": {
            "type": "object",
            "properties": {
                "balance": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "domain.BalanceSheet": {
            "type": "object",
            "properties": {
                "assets": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.StatementGroup"
                    }
                },
                "balanced": {
                    "type": "boolean"
                },
                "equity": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.StatementGroup"
                    }
                },
                "liabilities": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.StatementGroup"
                    }
                },
                "totalAssets": {
                    "type": "string"
                },
                "totalEquity": {
                    "type": "string"
                },
                "totalLiabilities": {
                    "type": "string"
                },
                "totalPassif": {
                    "type": "string"
                }
            }
        },
        "domain.Declaration": {
            "type": "object",
            "properties": {
                "country": {
                    "type": "string"
                },
                "format": {
                    "type": "string"
                },
                "lines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.DeclarationLine"
                    }
                },
                "period": {
                    "$ref": "#/definitions/domain.Period"
                },
                "summary": {
                    "$ref": "#/definitions/domain.DeclarationSummary"
                }
            }
        },
        "domain.DeclarationLine": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                }
            }
        },
        "domain.DeclarationSummary": {
            "type": "object",
            "properties": {
                "collected": {
                    "type": "string"
                },
                "deductible": {
                    "type": "string"
                },
                "localized": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "net": {
                    "type": "string"
                }
            }
        },
        "domain.IncomeStatement": {
            "type": "object",
            "properties": {
                "expenseItems": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.StatementGroup"
                    }
                },
                "netIncome": {
                    "type": "string"
                },
                "revenueItems": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.StatementGroup"
                    }
                },
                "totalExpenses": {
                    "type": "string"
                },
                "totalRevenue": {
                    "type": "string"
                }
            }
        },
        "domain.Period": {
            "type": "object",
            "properties": {
                "endDate": {
                    "type": "string"
                },
                "startDate": {
                    "type": "string"
                }
            }
        },
        "domain.PostingStats": {
            "type": "object",
            "properties": {
                "posted": {
                    "type": "integer"
                },
                "unbalanced": {
                    "type": "integer"
                },
                "unmapped": {
                    "type": "integer"
                }
            }
        },
        "domain.ReconciliationMatch": {
            "type": "object",
            "properties": {
                "confidence": {
                    "type": "number"
                },
                "invoiceId": {
                    "type": "string"
                },
                "invoiceNumber": {
                    "type": "string"
                },
                "transactionId": {
                    "type": "string"
                }
            }
        },
        "domain.StatementGroup": {
            "type": "object",
            "properties": {
                "accounts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.AccountLine"
                    }
                },
                "category": {
                    "type": "string"
                },
                "total": {
                    "type": "string"
                }
            }
        },
        "domain.StatementsReport": {
            "type": "object",
            "properties": {
                "balanceSheet": {
                    "$ref": "#/definitions/domain.BalanceSheet"
                },
                "incomeStatement": {
                    "$ref": "#/definitions/domain.IncomeStatement"
                },
                "netIncomeConsistent": {
                    "type": "boolean"
                },
                "period": {
                    "$ref": "#/definitions/domain.Period"
                },
                "postings": {
                    "$ref": "#/definitions/domain.PostingStats"
                },
                "taxEstimate": {
                    "$ref": "#/definitions/domain.TaxEstimate"
                },
                "totals": {
                    "$ref": "#/definitions/domain.Totals"
                },
                "vatBreakdown": {
                    "$ref": "#/definitions/domain.VATBreakdown"
                }
            }
        },
        "domain.TaxBracketDetail": {
            "type": "object",
            "properties": {
                "max": {
                    "type": "string"
                },
                "min": {
                    "type": "string"
                },
                "rate": {
                    "type": "string"
                },
                "tax": {
                    "type": "string"
                },
                "taxable": {
                    "type": "string"
                }
            }
        },
        "domain.TaxEstimate": {
            "type": "object",
            "properties": {
                "details": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.TaxBracketDetail"
                    }
                },
                "effectiveRate": {
                    "type": "string"
                },
                "netIncome": {
                    "type": "string"
                },
                "quarterlyPayment": {
                    "type": "string"
                },
                "totalTax": {
                    "type": "string"
                }
            }
        },
        "domain.Totals": {
            "type": "object",
            "properties": {
                "expenses": {
                    "type": "string"
                },
                "inputVAT": {
                    "type": "string"
                },
                "netIncome": {
                    "type": "string"
                },
                "outputVAT": {
                    "type": "string"
                },
                "revenue": {
                    "type": "string"
                },
                "revenueTTC": {
                    "type": "string"
                },
                "vatPayable": {
                    "type": "string"
                }
            }
        },
        "domain.VATBreakdown": {
            "type": "object",
            "properties": {
                "inputGoods": {
                    "type": "string"
                },
                "inputServices": {
                    "type": "string"
                },
                "netVAT": {
                    "type": "string"
                },
                "outputByRate": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.VATBucket"
                    }
                }
            }
        },
        "domain.VATBucket": {
            "type": "object",
            "properties": {
                "base": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "rate": {
                    "type": "string"
                },
                "vat": {
                    "type": "string"
                }
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "dto.ReconcileRequest": {
            "type": "object",
            "properties": {
                "threshold": {
                    "type": "number",
                    "maximum": 1,
                    "minimum": 0,
                    "example": 0.8
                }
            }
        },
        "dto.ReconcileResponse": {
            "type": "object",
            "properties": {
                "details": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ReconciliationMatch"
                    }
                },
                "failed": {
                    "type": "integer"
                },
                "matched": {
                    "type": "integer"
                },
                "scanned": {
                    "type": "integer"
                },
                "success": {
                    "type": "boolean"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "CashPilot Accounting Engine API",
	Description:      "Financial statements, VAT declarations and bank reconciliation for CashPilot ledgers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
