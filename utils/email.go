package utils

import (
	"bytes"
	"html/template"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

type OrderLineMail struct {
	Tipe          string
	Jumlah        int
	SubtotalHarga int64
}

type OrderConfirmationData struct {
	BuyerName    string
	OrderCode    string
	TanggalOrder string
	Lines        []OrderLineMail
	TotalHarga   int64
}

var orderConfirmationTmpl = template.Must(template.New("order_confirmation").Parse(`<!DOCTYPE html>
<html>
<body>
<p>Halo {{.BuyerName}},</p>
<p>Pesanan <strong>{{.OrderCode}}</strong> tanggal {{.TanggalOrder}} sudah kami terima.</p>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Tiket</th><th>Jumlah</th><th>Subtotal</th></tr>
{{range .Lines}}<tr><td>{{.Tipe}}</td><td>{{.Jumlah}}</td><td>{{.SubtotalHarga}}</td></tr>
{{end}}</table>
<p>Total: <strong>{{.TotalHarga}}</strong></p>
</body>
</html>`))

func RenderOrderConfirmation(data OrderConfirmationData) (string, error) {
	var body bytes.Buffer
	if err := orderConfirmationTmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewMailer trả nil nếu chưa cấu hình SMTP host
func NewMailer(host string, port int, username, password, from string) *Mailer {
	if host == "" {
		return nil
	}
	return &Mailer{host: host, port: port, username: username, password: password, from: from}
}

// SendOrderConfirmation gửi mail cho người mua ở background
func (m *Mailer) SendOrderConfirmation(to string, data OrderConfirmationData) {
	go func() {
		body, err := RenderOrderConfirmation(data)
		if err != nil {
			log.Error().Err(err).Str("kode", data.OrderCode).Msg("render order mail")
			return
		}

		msg := gomail.NewMessage()
		msg.SetHeader("From", m.from)
		msg.SetHeader("To", to)
		msg.SetHeader("Subject", "Konfirmasi pesanan #"+data.OrderCode)
		msg.SetBody("text/html", body)

		d := gomail.NewDialer(m.host, m.port, m.username, m.password)
		if err := d.DialAndSend(msg); err != nil {
			log.Error().Err(err).Str("kode", data.OrderCode).Msg("send order mail")
		}
	}()
}
