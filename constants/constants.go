package constants

const (
	ROLE_ADMIN = "ADMIN"
	ROLE_USER  = "USER"
)

// channel redis của change feed admin
const CHANNEL_PERUBAHAN = "admin:perubahan"

const (
	ACTION_CREATED = "created"
	ACTION_UPDATED = "updated"
	ACTION_DELETED = "deleted"

	// action đọc chỉ dùng cho metrics
	ACTION_LIST = "list"
	ACTION_GET  = "get"
	ACTION_SIGN = "sign"
	ACTION_QR   = "qr"
)

const (
	ENTITY_LOKASI   = "lokasi"
	ENTITY_KATEGORI = "kategori"
	ENTITY_EVENT    = "event"
	ENTITY_TIKET    = "tiket"
	ENTITY_ORDER    = "order"
)

const (
	LOKASI_CREATED = "Lokasi berhasil ditambahkan."
	LOKASI_UPDATED = "Lokasi berhasil diperbarui."
	LOKASI_DELETED = "Lokasi berhasil dihapus."

	KATEGORI_CREATED = "Kategori berhasil ditambahkan."
	KATEGORI_UPDATED = "Kategori berhasil diperbarui."
	KATEGORI_DELETED = "Kategori berhasil dihapus."

	EVENT_CREATED = "Event berhasil ditambahkan."
	EVENT_UPDATED = "Event berhasil diperbarui."
	EVENT_DELETED = "Event berhasil dihapus."

	TIKET_CREATED = "Tiket berhasil ditambahkan."
	TIKET_UPDATED = "Tiket berhasil diperbarui."
	TIKET_DELETED = "Tiket berhasil dihapus."

	ORDER_CREATED = "Order berhasil dibuat."
	ORDER_UPDATED = "Order berhasil diperbarui."
	ORDER_DELETED = "Order berhasil dihapus."
)

const (
	ERROR_INPUT               = "Data input tidak valid"
	ERROR_VALIDATION          = "Validasi gagal"
	ERROR_NOT_FOUND           = "Data tidak ditemukan"
	ERROR_IN_USE              = "Data masih digunakan oleh data lain"
	ERROR_DUPLICATE           = "Data sudah ada"
	ERROR_INTERNAL_ERROR      = "Terjadi kesalahan pada server"
	DATA_INPUT_IS_NOT_NUMBER  = "ID harus berupa angka"
	ERROR_UNAUTHORIZED        = "Token tidak valid"
	ERROR_FEATURE_UNAVAILABLE = "Fitur belum dikonfigurasi"
)
