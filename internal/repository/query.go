package repository

const (
	selectClient = `SELECT
		id,
		user_id,
		name,
		cedula,
		whatsapp_number,
		email,
		credit_limit,
		status,
		created_at,
		updated_at
	FROM clients`

	selectCredit = `SELECT
		cr.id,
		cr.client_id,
		cr.concept,
		cr.amount,
		cr.balance,
		cr.credit_days,
		cr.due_date,
		cr.status,
		cr.created_at,
		cr.updated_at
	FROM credits cr`

	selectPayment = `SELECT
		p.id,
		p.credit_id,
		p.client_id,
		p.amount,
		p.payment_method,
		p.notes,
		p.created_at
	FROM payments p`

	selectNotification = `SELECT
		n.id,
		n.client_id,
		n.credit_id,
		n.kind,
		n.destination,
		n.body,
		n.amount,
		n.status,
		n.error_message,
		n.created_at,
		n.sent_at
	FROM notifications n`
)
