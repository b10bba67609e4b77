package notifications

import (
	"bytes"
	"html/template"

	"github.com/Blac-guru/lenoxhill-healthcare/internal/models"
)

const appointmentConfirmationTemplate = `<!DOCTYPE html>
<html>
<body>
  <p>Dear {{.Name}},</p>
  <p>We have received your appointment request. Our team will contact you to confirm.</p>
  <ul>
    <li>Service: {{.ServiceName}}</li>
    <li>Preferred date: {{.PreferredDate}}</li>
    <li>Preferred time: {{.PreferredTime}}</li>
    <li>Reference: {{.AppointmentID}}</li>
  </ul>
  <p>Lenox Hill Healthcare</p>
</body>
</html>`

var appointmentConfirmationTmpl = template.Must(template.New("appointment_confirmation").Parse(appointmentConfirmationTemplate))

type appointmentConfirmationData struct {
	Name          string
	ServiceName   string
	PreferredDate string
	PreferredTime string
	AppointmentID string
}

func buildAppointmentConfirmationHTML(appointment models.Appointment, service models.Service) (string, error) {
	data := appointmentConfirmationData{
		Name:          appointment.FirstName + " " + appointment.LastName,
		ServiceName:   service.Name,
		PreferredDate: appointment.PreferredDate,
		PreferredTime: appointment.PreferredTime,
		AppointmentID: appointment.ID,
	}
	var buf bytes.Buffer
	if err := appointmentConfirmationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const orderConfirmationTemplate = `<!DOCTYPE html>
<html>
<body>
  <p>Dear {{.Name}},</p>
  <p>Thank you for your order. We will reach out on {{.Phone}} to arrange payment and delivery.</p>
  <ul>
    <li>Order number: {{.OrderID}}</li>
    <li>Total: KSh {{.Total}}</li>
  </ul>
  <p>Lenox Hill Pharmacy</p>
</body>
</html>`

var orderConfirmationTmpl = template.Must(template.New("order_confirmation").Parse(orderConfirmationTemplate))

type orderConfirmationData struct {
	Name    string
	Phone   string
	OrderID string
	Total   string
}

func buildOrderConfirmationHTML(order models.Order) (string, error) {
	data := orderConfirmationData{
		Name:    order.FirstName + " " + order.LastName,
		Phone:   order.Phone,
		OrderID: order.ID,
		Total:   order.Total,
	}
	var buf bytes.Buffer
	if err := orderConfirmationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
