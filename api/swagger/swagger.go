package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Talep Takip API",
        "description": "İzmir toplu ulaşım talep takip servisi",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Login"},
        {"name": "Kullanicilar", "description": "Account management"},
        {"name": "Talepler", "description": "Request records and their audit trail"},
        {"name": "Rapor", "description": "Date-range activity report"},
        {"name": "Dashboard", "description": "Overview aggregation"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GirisIstek"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/GirisSonucu"}},
                    "400": {"description": "Missing credentials", "schema": {"$ref": "#/definitions/HataYaniti"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/HataYaniti"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/HataYaniti"}}
                }
            }
        },
        "/kullanicilar": {
            "get": {
                "tags": ["Kullanicilar"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Kullanici"}}}
                }
            },
            "post": {
                "tags": ["Kullanicilar"],
                "summary": "Create user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateKullaniciIstek"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Kullanici"}},
                    "400": {"description": "Validation or duplicate username", "schema": {"$ref": "#/definitions/HataYaniti"}}
                }
            }
        },
        "/kullanicilar/{id}": {
            "put": {
                "tags": ["Kullanicilar"],
                "summary": "Update user",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/KullaniciUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Kullanici"}},
                    "400": {"description": "Empty update", "schema": {"$ref": "#/definitions/HataYaniti"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/HataYaniti"}}
                }
            },
            "delete": {
                "tags": ["Kullanicilar"],
                "summary": "Delete user",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/BasariYaniti"}},
                    "400": {"description": "Protected account", "schema": {"$ref": "#/definitions/HataYaniti"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/HataYaniti"}}
                }
            }
        },
        "/talepler": {
            "get": {
                "tags": ["Talepler"],
                "summary": "List records",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Talep"}}}
                }
            },
            "post": {
                "tags": ["Talepler"],
                "summary": "Create record",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TalepCreate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Talep"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/HataYaniti"}}
                }
            }
        },
        "/talepler/bulk": {
            "post": {
                "tags": ["Talepler"],
                "summary": "Import records",
                "description": "Inserts the whole batch in one transaction",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BulkTalepIstek"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Talep"}}},
                    "400": {"description": "Empty or invalid batch", "schema": {"$ref": "#/definitions/HataYaniti"}}
                }
            }
        },
        "/talepler/{id}": {
            "put": {
                "tags": ["Talepler"],
                "summary": "Update record",
                "description": "Applies changed fields and appends their audit entries atomically",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TalepUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Talep"}},
                    "400": {"description": "No changed field", "schema": {"$ref": "#/definitions/HataYaniti"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/HataYaniti"}}
                }
            },
            "delete": {
                "tags": ["Talepler"],
                "summary": "Delete record",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/BasariYaniti"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/HataYaniti"}}
                }
            }
        },
        "/talepler/{id}/logs": {
            "get": {
                "tags": ["Talepler"],
                "summary": "Record history",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/TalepLog"}}}
                }
            }
        },
        "/talepler/rapor": {
            "post": {
                "tags": ["Rapor"],
                "summary": "Activity report",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RaporIstek"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/RaporSonucu"}},
                    "400": {"description": "Missing bounds", "schema": {"$ref": "#/definitions/HataYaniti"}}
                }
            }
        },
        "/talepler/rapor/export": {
            "post": {
                "tags": ["Rapor"],
                "summary": "Export report",
                "description": "Streams the report as a CSV or PDF download",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RaporExportIstek"}}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "400": {"description": "Missing bounds or bad format", "schema": {"$ref": "#/definitions/HataYaniti"}}
                }
            }
        },
        "/dashboard/ozet": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Dashboard summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DashboardOzeti"}}
                }
            }
        }
    },
    "definitions": {
        "GirisIstek": {
            "type": "object",
            "properties": {
                "kullaniciAdi": {"type": "string"},
                "sifre": {"type": "string"}
            },
            "required": ["kullaniciAdi", "sifre"]
        },
        "GirisSonucu": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "user": {"$ref": "#/definitions/AuthUser"}
            }
        },
        "AuthUser": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "kullaniciAdi": {"type": "string"},
                "rol": {"type": "string"}
            }
        },
        "Kullanici": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "kullaniciAdi": {"type": "string"},
                "rol": {"type": "string"},
                "aktif": {"type": "boolean"},
                "olusturmaTarihi": {"type": "string"},
                "guncellemeTarihi": {"type": "string"}
            }
        },
        "CreateKullaniciIstek": {
            "type": "object",
            "properties": {
                "kullaniciAdi": {"type": "string"},
                "sifre": {"type": "string"},
                "rol": {"type": "string", "enum": ["admin", "user"]}
            },
            "required": ["kullaniciAdi", "sifre"]
        },
        "KullaniciUpdate": {
            "type": "object",
            "properties": {
                "kullaniciAdi": {"type": "string"},
                "sifre": {"type": "string"},
                "rol": {"type": "string"},
                "aktif": {"type": "boolean"}
            }
        },
        "Talep": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "talepSahibi": {"type": "string"},
                "talepSahibiAciklamasi": {"type": "string"},
                "talepSahibiDigerAciklama": {"type": "string"},
                "talepIlcesi": {"type": "string"},
                "bolge": {"type": "integer"},
                "hatNo": {"type": "string"},
                "isletici": {"type": "string"},
                "talepOzeti": {"type": "string"},
                "talepIletimSekli": {"type": "string"},
                "evrakTarihi": {"type": "string"},
                "evrakSayisi": {"type": "string"},
                "yapılanIs": {"type": "string"},
                "talepDurumu": {"type": "string"},
                "olusturmaTarihi": {"type": "string"},
                "guncellemeTarihi": {"type": "string"}
            }
        },
        "TalepCreate": {
            "type": "object",
            "properties": {
                "talepSahibi": {"type": "string"},
                "talepSahibiAciklamasi": {"type": "string"},
                "talepSahibiDigerAciklama": {"type": "string"},
                "talepIlcesi": {"type": "string"},
                "bolge": {"type": "integer"},
                "hatNo": {"type": "string"},
                "isletici": {"type": "string"},
                "talepOzeti": {"type": "string"},
                "talepIletimSekli": {"type": "string"},
                "evrakTarihi": {"type": "string"},
                "evrakSayisi": {"type": "string"},
                "yapılanIs": {"type": "string"},
                "talepDurumu": {"type": "string"}
            },
            "required": ["talepSahibi", "talepSahibiAciklamasi", "talepIlcesi", "bolge", "hatNo", "isletici", "talepOzeti", "talepIletimSekli", "talepDurumu"]
        },
        "BulkTalepIstek": {
            "type": "object",
            "properties": {
                "talepler": {"type": "array", "items": {"$ref": "#/definitions/TalepCreate"}}
            },
            "required": ["talepler"]
        },
        "TalepUpdate": {
            "type": "object",
            "properties": {
                "talepSahibi": {"type": "string"},
                "talepSahibiAciklamasi": {"type": "string"},
                "talepSahibiDigerAciklama": {"type": "string"},
                "talepIlcesi": {"type": "string"},
                "bolge": {"type": "integer"},
                "hatNo": {"type": "string"},
                "isletici": {"type": "string"},
                "talepOzeti": {"type": "string"},
                "talepIletimSekli": {"type": "string"},
                "evrakTarihi": {"type": "string"},
                "evrakSayisi": {"type": "string"},
                "yapılanIs": {"type": "string"},
                "talepDurumu": {"type": "string"}
            }
        },
        "TalepLog": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "degisenAlan": {"type": "string"},
                "eskiDeger": {"type": "string"},
                "yeniDeger": {"type": "string"},
                "guncellemeTarihi": {"type": "string"}
            }
        },
        "RaporIstek": {
            "type": "object",
            "properties": {
                "baslangicTarihi": {"type": "string", "format": "date"},
                "bitisTarihi": {"type": "string", "format": "date"}
            },
            "required": ["baslangicTarihi", "bitisTarihi"]
        },
        "RaporExportIstek": {
            "type": "object",
            "properties": {
                "baslangicTarihi": {"type": "string", "format": "date"},
                "bitisTarihi": {"type": "string", "format": "date"},
                "format": {"type": "string", "enum": ["csv", "pdf"]}
            },
            "required": ["baslangicTarihi", "bitisTarihi", "format"]
        },
        "RaporSonucu": {
            "type": "object",
            "properties": {
                "yeniTalepler": {"type": "array", "items": {"$ref": "#/definitions/Talep"}},
                "durumDegisiklikleri": {"type": "array", "items": {"$ref": "#/definitions/Talep"}},
                "toplamYeni": {"type": "integer"},
                "toplamDurumDegisikligi": {"type": "integer"}
            }
        },
        "DashboardOzeti": {
            "type": "object",
            "properties": {
                "toplamTalep": {"type": "integer"},
                "durumDagilimi": {"type": "array", "items": {"$ref": "#/definitions/SayimSatiri"}},
                "isleticiDagilimi": {"type": "array", "items": {"$ref": "#/definitions/SayimSatiri"}},
                "bolgeDagilimi": {"type": "array", "items": {"$ref": "#/definitions/SayimSatiri"}},
                "ilceDagilimi": {"type": "array", "items": {"$ref": "#/definitions/SayimSatiri"}}
            }
        },
        "SayimSatiri": {
            "type": "object",
            "properties": {
                "ad": {"type": "string"},
                "adet": {"type": "integer"}
            }
        },
        "BasariYaniti": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"}
            }
        },
        "HataYaniti": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
