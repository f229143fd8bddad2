// Package study serves the static study-content catalog: one module per
// course area, with key materials and applied case examples.
package study

// Material is a key point within a study module.
type Material struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Example is an applied case with the expected guard action.
type Example struct {
	Case   string `json:"case"`
	Action string `json:"action"`
}

// Module is one study area of the OS10 course.
type Module struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Explanation string     `json:"explanation"`
	Materials   []Material `json:"materials"`
	Examples    []Example  `json:"examples"`
}

// OfficialLink points to authoritative legal source material.
type OfficialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

// Modules returns the full study catalog, in course order.
func Modules() []Module {
	return modules
}

// ModuleByID returns the module with the given ID, or false.
func ModuleByID(id string) (Module, bool) {
	for _, m := range modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

// OfficialLinks returns the curated legal reference links.
func OfficialLinks() []OfficialLink {
	return officialLinks
}

var officialLinks = []OfficialLink{
	{Name: "Ley 21.659 (Seguridad)", URL: "https://www.bcn.cl/leychile/navegar?idNorma=1201201", Icon: "fa-gavel"},
	{Name: "Ley 19.628 (Privacidad)", URL: "https://www.bcn.cl/leychile/navegar?idNorma=141599", Icon: "fa-user-lock"},
	{Name: "Ley 20.609 (Zamudio)", URL: "https://www.bcn.cl/leychile/navegar?idNorma=1042044", Icon: "fa-users-slash"},
	{Name: "Constitución Política", URL: "https://www.bcn.cl/leychile/navegar?idNorma=24230", Icon: "fa-book"},
}

var modules = []Module{
	{
		ID:          "legal",
		Title:       "Legislación Ley 21.659",
		Description: "Normativa legal base.",
		Icon:        "fa-scale-balanced",
		Explanation: "Marco legal que profesionaliza la seguridad privada y establece al guardia como coadyuvante de la seguridad pública.",
		Materials: []Material{
			{Title: "VIGENCIA DE CREDENCIAL DE 4 AÑOS.", Detail: "La nueva normativa extiende el plazo de validez de la tarjeta de identificación, exigiendo re-entrenamiento técnico antes de cada renovación."},
			{Title: "SEGURO DE VIDA MÍNIMO DE 500 UF OBLIGATORIO.", Detail: "Irrenunciable y costeado íntegramente por la empresa empleadora."},
			{Title: "DEBER DE DENUNCIA EN 24 HORAS MÁXIMO.", Detail: "Ante el conocimiento de un delito, el guardia debe denunciar a Carabineros o PDI en un plazo no superior a un día corrido."},
			{Title: "PROHIBICIÓN ABSOLUTA DE PORTAR ARMAS DE FUEGO.", Detail: "El Guardia de Seguridad es coadyuvante desarmado. El porte de armas queda reservado para Vigilantes Privados."},
		},
		Examples: []Example{
			{Case: "Denuncia de Delito", Action: "Informar a Carabineros antes de 24 horas. Ejemplo: ver un hurto grabado en cámaras."},
			{Case: "Fiscalización OS10", Action: "Presentar Credencial OS10 vigente y Cédula de Identidad física."},
		},
	},
	{
		ID:          "risks",
		Title:       "Prevención de Riesgos",
		Description: "Seguridad y Salud.",
		Icon:        "fa-helmet-safety",
		Explanation: "Seguridad y salud en el trabajo aplicada al guardia. Gestión de peligros y protocolos de emergencia.",
		Materials: []Material{
			{Title: "USO DE EPP OBLIGATORIO.", Detail: "El guardia debe portar siempre sus Elementos de Protección Individual, como calzado de seguridad y chaleco reflectante."},
			{Title: "TIPOS DE FUEGO (A, B, C, D, K).", Detail: "Conocer la clasificación del fuego es clave para elegir el extintor correcto: A (Sólidos), B (Líquidos), C (Eléctricos)."},
			{Title: "PLAN DE EMERGENCIA Y EVACUACIÓN.", Detail: "El guardia debe guiar a las personas hacia la Zona de Seguridad siguiendo las vías de evacuación despejadas."},
		},
		Examples: []Example{
			{Case: "Amago de Incendio", Action: "Evaluar el tipo de fuego, usar el extintor PQS si es posible y avisar a Bomberos."},
		},
	},
	{
		ID:          "first_aid",
		Title:       "Primeros Auxilios",
		Description: "Atención de Emergencia.",
		Icon:        "fa-kit-medical",
		Explanation: "Atención inmediata y provisional prestada a personas accidentadas antes de la llegada de médicos.",
		Materials: []Material{
			{Title: "PROTOCOLO P.A.S.", Detail: "PROTEGER la escena, AVISAR a emergencias (131) y SOCORRER a la víctima solo si se tienen los conocimientos."},
			{Title: "MANIOBRA DE RCP BÁSICA.", Detail: "Reanimación Cardiopulmonar: 30 compresiones torácicas por 2 insuflaciones a un ritmo constante."},
			{Title: "MANIOBRA DE HEIMLICH.", Detail: "Compresión abdominal utilizada para desobstruir la vía aérea ante un atragantamiento total."},
		},
		Examples: []Example{
			{Case: "Persona Desmayada", Action: "Verificar consciencia y respiración. Si no responde, iniciar RCP y pedir un DEA."},
		},
	},
	{
		ID:          "human_rights",
		Title:       "Derechos Humanos",
		Description: "Art. 19 Constitución.",
		Icon:        "fa-hand-holding-heart",
		Explanation: "Principios de dignidad humana y garantías constitucionales (Art. 19) aplicadas a la seguridad.",
		Materials: []Material{
			{Title: "ART. 19 N°1: DERECHO A LA VIDA.", Detail: "Resguardo de la integridad física y psíquica de toda persona, prohibiendo cualquier apremio ilegítimo."},
			{Title: "ART. 19 N°2: IGUALDAD ANTE LA LEY.", Detail: "Prohibición absoluta de discriminación arbitraria en el acceso a recintos o trato con el público."},
			{Title: "RECURSO DE AMPARO.", Detail: "Acción legal que protege a cualquier persona ante una detención ilegal o arbitraria."},
		},
		Examples: []Example{
			{Case: "Detención en Flagrancia", Action: "Retener al sospechoso sin violencia excesiva y llamar de inmediato al 133."},
		},
	},
	{
		ID:          "ethics",
		Title:       "Ética y Probidad",
		Description: "Probidad y Género.",
		Icon:        "fa-gavel",
		Explanation: "Compromiso de conducta honesta y mecanismos legales contra la discriminación.",
		Materials: []Material{
			{Title: "PROBIDAD: INTERÉS GENERAL.", Detail: "Anteponer siempre la seguridad de la comunidad por sobre cualquier beneficio o favor personal."},
			{Title: "LEY ZAMUDIO (20.609).", Detail: "Establece sanciones y multas de hasta 50 UTM por actos de discriminación arbitraria."},
			{Title: "LEY 21.675 (CONTRA LA VIOLENCIA).", Detail: "Marco legal para la prevención, sanción y erradicación de la violencia contra las mujeres."},
		},
		Examples: []Example{
			{Case: "Intento de Soborno", Action: "Rechazar de inmediato e informar por conducto regular a la jefatura."},
		},
	},
	{
		ID:          "facilities",
		Title:       "Seguridad Instalaciones",
		Description: "Protección de activos.",
		Icon:        "fa-building-shield",
		Explanation: "Protección de activos, control de accesos y gestión de sistemas de emergencia.",
		Materials: []Material{
			{Title: "CONTROL DE ACCESO.", Detail: "Es el primer anillo de defensa y el punto más crítico para prevenir intrusiones no autorizadas."},
			{Title: "EXTINTORES PQS PARA FUEGOS ABC.", Detail: "Conocimiento obligatorio del uso de extintores de Polvo Químico Seco para emergencias."},
		},
		Examples: []Example{
			{Case: "Detección de Humo", Action: "Informar a central y verificar según el Plan de Emergencia local."},
		},
	},
	{
		ID:          "uniform",
		Title:       "Uniforme Res. 2183",
		Description: "Resolución 2183.",
		Icon:        "fa-shirt",
		Explanation: "Estándar visual obligatorio que diferencia al guardia del personal militar o policial.",
		Materials: []Material{
			{Title: "CAMISA GRIS PERLA OBLIGATORIA.", Detail: "Color único reglamentario para camisas y blusas para la distinción visual clara."},
			{Title: "CHALECO ROJO FLUORESCENTE.", Detail: "Debe portarse sobre la camisa con la leyenda SEGURIDAD PRIVADA en la espalda."},
			{Title: "BASTÓN MÁXIMO 60 CM.", Detail: "Única arma defensiva autorizada, fabricada en policarbonato, de uso estrictamente defensivo."},
		},
		Examples: []Example{
			{Case: "Identificación Visual", Action: "Portar siempre la tarjeta OS10 visible sobre el pecho izquierdo."},
		},
	},
	{
		ID:          "privacy",
		Title:       "Privacidad (Ley 19.628)",
		Description: "Ley 19.628 y ARCO.",
		Icon:        "fa-user-lock",
		Explanation: "Regulación del tratamiento de datos personales y sensibles en el ejercicio de la vigilancia.",
		Materials: []Material{
			{Title: "DERECHOS ARCO.", Detail: "Acceso, Rectificación, Cancelación y Oposición. Facultades del ciudadano sobre sus datos."},
			{Title: "LOS DATOS SENSIBLES ESTÁN PROTEGIDOS.", Detail: "Información sobre salud o religión no puede ser tratada sin permiso expreso."},
		},
		Examples: []Example{
			{Case: "Solicitud de Video", Action: "No entregar a particulares; solo a Carabineros o Fiscalía."},
		},
	},
}
