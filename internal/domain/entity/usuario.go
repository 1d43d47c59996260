package entity

// Usuario representa um usuário do sistema. O rascunho existe no form store,
// mas nenhuma tela de listagem foi publicada para este tipo.
type Usuario struct {
	ID             int64  `json:"id"`
	Nome           string `json:"nome"`
	CPF            string `json:"cpf"`
	Telefone       string `json:"telefone"`
	Celular        string `json:"celular"`
	Email          string `json:"email"`
	DataNascimento string `json:"data_nascimento"`
	Usuario        string `json:"usuario"`
	Senha          string `json:"senha"`
	Picture        string `json:"picture"`
}
